package teaui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/freewrite/pkg/entry"
)

const (
	minMeasure   = 20
	maxMeasure   = 120
	historyWidth = 44
	// measureScale maps a font size in pixels to a line length in cells;
	// the default 24px gives 60 columns.
	measureScale = 1440
)

// measure is the text column width for a font size.
func measure(size string) int {
	px, err := strconv.Atoi(size)
	if err != nil || px <= 0 {
		px, _ = strconv.Atoi(entry.DefaultFontSize)
	}
	return max(minMeasure, min(measureScale/px, maxMeasure))
}

// fontDecoration stands in for the typeface a terminal cannot change.
func fontDecoration(f entry.Font) lipgloss.Style {
	switch f {
	case entry.FontScript, entry.FontElegant, entry.FontPlaypen:
		return lipgloss.NewStyle().Italic(true)
	case entry.FontClassic:
		return lipgloss.NewStyle().Bold(true)
	default:
		return lipgloss.NewStyle()
	}
}

func (m *Model) footerHeight() int {
	if m.chrome {
		return 1
	}
	return 0
}

// editorArea returns the left edge and width of the region the editor is
// centered in.
func (m *Model) editorArea() (int, int) {
	if m.mode == modeHistory {
		pw := m.panelWidth()
		return pw, max(m.width-pw, 1)
	}
	return 0, m.width
}

func (m *Model) panelWidth() int {
	return min(historyWidth, max(m.width/2, 20))
}

func (m *Model) bodyHeight() int {
	return max(m.height-m.footerHeight(), 1)
}

func (m *Model) layout() {
	_, areaW := m.editorArea()
	w := min(measure(m.prefs.FontSize), max(areaW-4, 1))
	// one blank row above and below the text
	m.editor.SetSize(w, max(m.bodyHeight()-2, 1))
	m.history.SetSize(m.panelWidth(), m.bodyHeight())
	if m.dialog != nil {
		m.dialog.SetWidth(m.width)
	}
	if m.help != nil && m.mode == modeHelp {
		m.help.SetSize(m.width-4, m.height-2)
	}
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	bg := lipgloss.NewStyle().Background(lipgloss.Color(m.th.Palette.Background))
	ws := lipgloss.WithWhitespaceStyle(bg)
	bodyH := m.bodyHeight()

	var body string
	var cursor *tea.Cursor
	switch m.mode {
	case modeHelp:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.help.View(), ws)
	case modeDialog:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.dialog.View(), ws)
	default:
		left, areaW := m.editorArea()
		text, cur := m.editor.View()
		pad := max((areaW-m.editor.Width())/2, 0)
		area := lipgloss.Place(areaW, bodyH, lipgloss.Left, lipgloss.Top,
			lipgloss.NewStyle().Padding(1, 0, 0, pad).Render(text), ws)
		if m.mode == modeHistory {
			panel := lipgloss.Place(left, bodyH, lipgloss.Left, lipgloss.Top, m.history.View(), ws)
			body = lipgloss.JoinHorizontal(lipgloss.Top, panel, area)
		} else {
			body = area
			if cur != nil {
				cur.X += left + pad
				cur.Y++
				cursor = cur
			}
		}
	}

	if !m.chrome {
		return body, cursor
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footerView()), cursor
}

func (m *Model) footerView() string {
	f := m.th.Footer
	sep := f.Item.Render(f.Divider)

	words := m.session.WordCount()
	left := []string{
		f.Active.Render(fmt.Sprintf("%d %s", words, plural(words, "word", "words"))),
		f.Item.Render(m.prefs.Font.Label()),
		f.Item.Render(m.prefs.FontSize + "px"),
		f.Item.Render(string(m.prefs.Theme)),
	}
	if m.session.UnsavedChanges() {
		left = append(left, f.Item.Render("editing"))
	}
	leftText := strings.Join(left, sep)

	var right string
	switch {
	case m.countdown.Running():
		right = f.Timer.Render("◷ " + m.countdown.Format())
	case m.countdown.Active():
		right = f.Item.Render("⏸ " + m.countdown.Format())
	default:
		right = f.Item.Render(fmt.Sprintf("◷ %d:00", m.lastTimer))
	}

	var status string
	if m.status != "" {
		st := f.Status
		if m.statusErr {
			st = f.Error
		}
		status = st.Render(m.status)
	}

	gap := m.width - lipgloss.Width(leftText) - lipgloss.Width(right)
	if status != "" && gap-lipgloss.Width(status) >= 4 {
		inner := gap - lipgloss.Width(status)
		lpad := inner / 2
		return leftText + f.Bar.Render(strings.Repeat(" ", lpad)) + status + f.Bar.Render(strings.Repeat(" ", inner-lpad)) + right
	}
	if status != "" {
		// too narrow for everything; the status wins
		return f.Bar.Width(m.width).Render(status)
	}
	return leftText + f.Bar.Render(strings.Repeat(" ", max(gap, 1))) + right
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
