// Package history is the side panel listing saved entries.
package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/freewrite/pkg/draft"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/tui/theme"
)

// Action is what the panel asks its owner to do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionRename
	ActionDelete
	ActionClearAll
	ActionClose
)

type item struct {
	e       entry.Entry
	current bool
	width   int
}

func (i item) Title() string {
	mark := "  "
	if i.current {
		mark = "● "
	}
	return truncate.StringWithTail(mark+i.e.Title, uint(max(i.width, 4)), "…")
}

func (i item) Description() string {
	meta := fmt.Sprintf("%s · %dw", entry.FormatDate(i.e.UpdatedAt.Time), draft.WordCount(i.e.Content))
	preview := entry.OneLine(i.e.Preview())
	if preview == "" {
		return "  " + meta
	}
	return truncate.StringWithTail("  "+meta+" · "+preview, uint(max(i.width, 4)), "…")
}

func (i item) FilterValue() string { return i.e.Title + " " + i.e.Content }

// Model is the history panel.
type Model struct {
	list      list.Model
	filter    textinput.Model
	filtering bool

	entries   []entry.Entry
	currentID string

	width  int
	height int
	styles theme.PanelTheme
}

// New builds an empty panel.
func New(styles theme.PanelTheme) *Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 30, 10)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter"

	return &Model{
		list:   l,
		filter: fi,
		styles: styles,
	}
}

func (m *Model) SetStyles(styles theme.PanelTheme) { m.styles = styles }

// SetSize sets the outer size of the panel, frame included.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 20)
	m.height = max(height, 8)
	innerW := m.width - m.styles.Frame.GetHorizontalFrameSize()
	innerH := m.height - m.styles.Frame.GetVerticalFrameSize()
	// title, filter and hint lines
	m.list.SetSize(innerW, max(innerH-3, 2))
	m.filter.SetWidth(max(innerW-3, 1))
	m.refresh()
}

// SetEntries replaces the listed entries, keeping the selection on the same
// entry when it is still present.
func (m *Model) SetEntries(entries []entry.Entry, currentID string) {
	m.entries = entries
	m.currentID = currentID
	m.refresh()
}

// Query is the active filter text.
func (m *Model) Query() string { return m.filter.Value() }

// Filtering reports whether keys go to the filter input.
func (m *Model) Filtering() bool { return m.filtering }

// Len is the number of visible entries.
func (m *Model) Len() int { return len(m.list.Items()) }

// Selected returns the highlighted entry.
func (m *Model) Selected() (entry.Entry, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return entry.Entry{}, false
	}
	return it.e, true
}

func (m *Model) refresh() {
	selected, hadSel := m.Selected()
	innerW := max(m.width-m.styles.Frame.GetHorizontalFrameSize()-2, 4)
	q := m.filter.Value()
	items := make([]list.Item, 0, len(m.entries))
	idx := -1
	for _, e := range m.entries {
		if !e.Matches(q) {
			continue
		}
		if hadSel && e.ID == selected.ID {
			idx = len(items)
		} else if !hadSel && e.ID == m.currentID {
			idx = len(items)
		}
		items = append(items, item{e: e, current: e.ID == m.currentID, width: innerW})
	}
	m.list.SetItems(items)
	if idx >= 0 {
		m.list.Select(idx)
	} else if len(items) > 0 {
		m.list.Select(min(m.list.Index(), len(items)-1))
	}
}

// Update handles a key press and reports what the owner should do.
func (m *Model) Update(msg tea.KeyPressMsg) (Action, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filter.SetValue("")
			m.stopFilter()
			m.refresh()
			return ActionNone, nil
		case "enter":
			m.stopFilter()
			return ActionNone, nil
		case "up", "down":
			m.stopFilter()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refresh()
			return ActionNone, cmd
		}
	}

	switch msg.String() {
	case "esc", "q", "ctrl+o":
		if m.filter.Value() != "" && msg.String() == "esc" {
			m.filter.SetValue("")
			m.refresh()
			return ActionNone, nil
		}
		return ActionClose, nil
	case "up", "k":
		m.list.CursorUp()
	case "down", "j":
		m.list.CursorDown()
	case "home", "g":
		m.list.Select(0)
	case "end", "G":
		if n := len(m.list.Items()); n > 0 {
			m.list.Select(n - 1)
		}
	case "/":
		m.filtering = true
		return ActionNone, m.filter.Focus()
	case "enter":
		if _, ok := m.Selected(); ok {
			return ActionOpen, nil
		}
	case "r":
		if _, ok := m.Selected(); ok {
			return ActionRename, nil
		}
	case "d", "x", "delete":
		if _, ok := m.Selected(); ok {
			return ActionDelete, nil
		}
	case "C":
		if len(m.entries) > 0 {
			return ActionClearAll, nil
		}
	}
	return ActionNone, nil
}

func (m *Model) stopFilter() {
	m.filtering = false
	m.filter.Blur()
}

// View renders the framed panel.
func (m *Model) View() string {
	title := m.styles.Title.Render(fmt.Sprintf("History (%d)", len(m.entries)))
	var filter string
	switch {
	case m.filtering:
		filter = m.styles.Filter.Render(m.filter.View())
	case m.filter.Value() != "":
		filter = m.styles.Filter.Render("/ " + m.filter.Value())
	default:
		filter = m.styles.Muted.Render("/ to filter")
	}
	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = m.styles.Muted.Render(emptyText(m.entries, m.filter.Value()))
	}
	hint := m.styles.Muted.Render("enter open · r rename · d delete · C clear · esc close")

	innerH := m.height - m.styles.Frame.GetVerticalFrameSize()
	content := lipgloss.JoinVertical(lipgloss.Left, title, filter, body)
	content = lipgloss.PlaceVertical(max(innerH-1, 1), lipgloss.Top, content)
	content = lipgloss.JoinVertical(lipgloss.Left, content, hint)
	innerW := m.width - m.styles.Frame.GetHorizontalFrameSize()
	return m.styles.Frame.Render(lipgloss.NewStyle().Width(innerW).Render(content))
}

func emptyText(entries []entry.Entry, query string) string {
	if len(entries) == 0 {
		return "No saved entries yet."
	}
	return fmt.Sprintf("Nothing matches %q.", strings.TrimSpace(query))
}
