// Package eventviewer is the scrolling message log shown beside a component
// in the testbed.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/tui/theme"
)

const defaultLimit = 200

// Event is one logged line. Level reuses the session notification grades.
type Event struct {
	At     time.Time
	Source string
	Name   string
	Detail string
	Level  app.Level
}

func (e Event) text() string {
	if e.Detail == "" {
		return e.Name
	}
	return e.Name + " " + e.Detail
}

// Model keeps the newest events on top, up to a limit.
type Model struct {
	vp     viewport.Model
	events []Event
	limit  int

	width, height int

	frame, title, muted, source lipgloss.Style
	levels                      map[app.Level]lipgloss.Style
}

// New returns an empty log holding at most limit events.
func New(limit int, t theme.Theme) *Model {
	if limit <= 0 {
		limit = defaultLimit
	}
	m := &Model{
		vp:     viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:  limit,
		frame:  t.Panel.Frame.Padding(0),
		title:  t.Panel.Title,
		muted:  t.Panel.Muted,
		source: t.Panel.Filter,
		levels: map[app.Level]lipgloss.Style{
			app.LevelInfo:  t.Modal.Body,
			app.LevelWarn:  t.Footer.Status.UnsetBackground(),
			app.LevelError: t.Footer.Error.UnsetBackground(),
		},
	}
	m.render()
	return m
}

// SetSize fits the log, border included, into width x height.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 4), max(height, 3)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	// Border takes two rows and columns, the title one more row.
	m.vp.SetWidth(max(1, width-2))
	m.vp.SetHeight(max(1, height-3))
	m.render()
}

// Add records e, stamping it now if it has no time.
func (m *Model) Add(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	if e.Source == "" {
		e.Source = "tea"
	}
	m.events = append([]Event{e}, m.events...)
	if len(m.events) > m.limit {
		m.events = m.events[:m.limit]
	}
	m.render()
	m.vp.GotoTop()
}

// Addf records a formatted event.
func (m *Model) Addf(source string, level app.Level, name, format string, args ...any) {
	m.Add(Event{Source: source, Name: name, Detail: fmt.Sprintf(format, args...), Level: level})
}

// Notify logs a session notification.
func (m *Model) Notify(n app.Notification) {
	detail := ""
	if n.Err != nil {
		detail = n.Err.Error()
	}
	m.Add(Event{Source: "session", Name: n.Message, Detail: detail, Level: n.Level})
}

// Events returns a copy of the log, newest first.
func (m *Model) Events() []Event {
	return append([]Event(nil), m.events...)
}

// Reset empties the log.
func (m *Model) Reset() {
	m.events = nil
	m.render()
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	head := m.title.Render(fmt.Sprintf("Events · %d", len(m.events)))
	return m.frame.Width(m.width).Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, m.vp.View()))
}

func (m *Model) render() {
	if len(m.events) == 0 {
		m.vp.SetContent(m.muted.Render("nothing logged"))
		return
	}
	var b strings.Builder
	for i, e := range m.events {
		if i > 0 {
			b.WriteByte('\n')
		}
		text := e.text()
		if e.Level != app.LevelInfo {
			text = e.Level.String() + ": " + text
		}
		fmt.Fprintf(&b, "%s %s %s",
			m.muted.Render(e.At.Format("15:04:05")),
			m.source.Render(e.Source),
			m.levels[e.Level].Render(text))
	}
	m.vp.SetContent(b.String())
}
