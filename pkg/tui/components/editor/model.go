// Package editor is the full-window writing surface: a plain text buffer
// with a cursor, an optional selection and soft word wrap.
package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/freewrite/pkg/tui/theme"
)

// Model holds the buffer being edited. The zero value is not usable; call
// New.
type Model struct {
	value  []rune
	cursor int
	// anchor is the other end of the selection, or -1.
	anchor int
	// goal keeps the column while moving up and down.
	goal int

	width  int
	height int
	offset int

	Placeholder string
	// Decoration is applied on top of the text style, standing in for the
	// chosen typeface.
	Decoration lipgloss.Style
	styles     theme.EditorTheme
}

// New returns an empty editor.
func New() *Model {
	return &Model{
		anchor: -1,
		goal:   -1,
		width:  1,
		height: 1,
		styles: theme.For("").Editor,
	}
}

func (m *Model) SetStyles(s theme.EditorTheme) { m.styles = s }

// SetSize sets the text area in cells.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.scroll()
}

func (m *Model) Width() int  { return m.width }
func (m *Model) Height() int { return m.height }

// Value returns the buffer.
func (m *Model) Value() string { return string(m.value) }

// SetValue replaces the buffer, moving the cursor to the end.
func (m *Model) SetValue(s string) {
	m.value = []rune(normalize(s))
	m.cursor = len(m.value)
	m.anchor = -1
	m.goal = -1
	m.scroll()
}

// Replace swaps the buffer but keeps the cursor where it was when possible.
func (m *Model) Replace(s string) {
	if s == string(m.value) {
		return
	}
	m.value = []rune(normalize(s))
	m.cursor = min(m.cursor, len(m.value))
	m.anchor = -1
	m.goal = -1
	m.scroll()
}

// Cursor is the rune offset of the cursor.
func (m *Model) Cursor() int { return m.cursor }

// SetCursor moves the cursor, clearing the selection.
func (m *Model) SetCursor(pos int) {
	m.cursor = clamp(pos, 0, len(m.value))
	m.anchor = -1
	m.goal = -1
	m.scroll()
}

// Selection returns the selected half-open range of runes.
func (m *Model) Selection() (start, end int, ok bool) {
	if m.anchor < 0 || m.anchor == m.cursor {
		return 0, 0, false
	}
	return min(m.anchor, m.cursor), max(m.anchor, m.cursor), true
}

// SelectedText returns the selection, or "" when nothing is selected.
func (m *Model) SelectedText() string {
	start, end, ok := m.Selection()
	if !ok {
		return ""
	}
	return string(m.value[start:end])
}

// SelectAll selects the whole buffer.
func (m *Model) SelectAll() {
	m.anchor = 0
	m.cursor = len(m.value)
	m.scroll()
}

// ClearSelection drops the selection and reports whether there was one.
func (m *Model) ClearSelection() bool {
	_, _, had := m.Selection()
	m.anchor = -1
	return had
}

// DeleteSelection removes and returns the selected text.
func (m *Model) DeleteSelection() string {
	start, end, ok := m.Selection()
	if !ok {
		m.anchor = -1
		return ""
	}
	cut := string(m.value[start:end])
	m.value = append(m.value[:start:start], m.value[end:]...)
	m.cursor = start
	m.anchor = -1
	m.goal = -1
	m.scroll()
	return cut
}

// InsertText types s at the cursor, replacing any selection.
func (m *Model) InsertText(s string) {
	m.DeleteSelection()
	rs := []rune(normalize(s))
	if len(rs) == 0 {
		return
	}
	next := make([]rune, 0, len(m.value)+len(rs))
	next = append(next, m.value[:m.cursor]...)
	next = append(next, rs...)
	next = append(next, m.value[m.cursor:]...)
	m.value = next
	m.cursor += len(rs)
	m.goal = -1
	m.scroll()
}

// Update applies a key press or paste. It reports whether the buffer
// changed.
func (m *Model) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.PasteMsg:
		m.InsertText(string(msg))
		return true
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return false
}

func (m *Model) handleKey(msg tea.KeyPressMsg) bool {
	switch key := msg.String(); key {
	case "left", "right", "up", "down", "home", "end", "pgup", "pgdown", "ctrl+left", "ctrl+right", "ctrl+home", "ctrl+end":
		m.anchor = -1
		m.move(key)
		return false
	case "shift+left", "shift+right", "shift+up", "shift+down", "shift+home", "shift+end":
		if m.anchor < 0 {
			m.anchor = m.cursor
		}
		m.move(strings.TrimPrefix(key, "shift+"))
		return false
	case "enter":
		m.InsertText("\n")
		return true
	case "backspace":
		if m.DeleteSelection() != "" {
			return true
		}
		if m.cursor == 0 {
			return false
		}
		m.value = append(m.value[:m.cursor-1:m.cursor-1], m.value[m.cursor:]...)
		m.cursor--
		m.goal = -1
		m.scroll()
		return true
	case "ctrl+backspace", "alt+backspace", "ctrl+w":
		if m.DeleteSelection() != "" {
			return true
		}
		start := m.wordLeft()
		if start == m.cursor {
			return false
		}
		m.value = append(m.value[:start:start], m.value[m.cursor:]...)
		m.cursor = start
		m.goal = -1
		m.scroll()
		return true
	case "delete":
		if m.DeleteSelection() != "" {
			return true
		}
		if m.cursor >= len(m.value) {
			return false
		}
		m.value = append(m.value[:m.cursor:m.cursor], m.value[m.cursor+1:]...)
		m.goal = -1
		m.scroll()
		return true
	case "tab":
		m.InsertText("    ")
		return true
	}
	if msg.Text == "" || msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
		return false
	}
	m.InsertText(msg.Text)
	return true
}

func (m *Model) move(key string) {
	rows := layout(m.value, m.width)
	r, col := locate(rows, m.value, m.cursor)
	if m.goal < 0 {
		m.goal = col
	}
	vertical := false
	switch key {
	case "left":
		m.cursor = max(m.cursor-1, 0)
	case "right":
		m.cursor = min(m.cursor+1, len(m.value))
	case "ctrl+left":
		m.cursor = m.wordLeft()
	case "ctrl+right":
		m.cursor = m.wordRight()
	case "home":
		m.cursor = rows[r].start
	case "end":
		m.cursor = offsetAt(rows, m.value, r, 1<<30)
	case "ctrl+home":
		m.cursor = 0
	case "ctrl+end":
		m.cursor = len(m.value)
	case "up", "down", "pgup", "pgdown":
		vertical = true
		step := map[string]int{"up": -1, "down": 1, "pgup": -m.height, "pgdown": m.height}[key]
		target := clamp(r+step, 0, len(rows)-1)
		switch {
		case target == r && step < 0:
			m.cursor = 0
		case target == r && step > 0:
			m.cursor = len(m.value)
		default:
			m.cursor = offsetAt(rows, m.value, target, m.goal)
		}
	}
	if !vertical {
		m.goal = -1
	}
	m.scroll()
}

func (m *Model) wordLeft() int {
	i := m.cursor
	for i > 0 && isSpace(m.value[i-1]) {
		i--
	}
	for i > 0 && !isSpace(m.value[i-1]) {
		i--
	}
	return i
}

func (m *Model) wordRight() int {
	i := m.cursor
	for i < len(m.value) && isSpace(m.value[i]) {
		i++
	}
	for i < len(m.value) && !isSpace(m.value[i]) {
		i++
	}
	return i
}

// scroll keeps the cursor row on screen.
func (m *Model) scroll() {
	rows := layout(m.value, m.width)
	r, _ := locate(rows, m.value, m.cursor)
	if r < m.offset {
		m.offset = r
	}
	if r >= m.offset+m.height {
		m.offset = r - m.height + 1
	}
	m.offset = clamp(m.offset, 0, max(len(rows)-m.height, 0))
}

// View renders exactly height lines of width cells and the cursor position
// relative to the top left corner of the text area.
func (m *Model) View() (string, *tea.Cursor) {
	text := m.styles.Text.Inherit(m.Decoration)
	if len(m.value) == 0 {
		lines := make([]string, m.height)
		for i := range lines {
			lines[i] = text.Width(m.width).Render("")
		}
		if m.Placeholder != "" {
			lines[0] = m.styles.Placeholder.Width(m.width).Render(m.Placeholder)
		}
		return strings.Join(lines, "\n"), m.cursorAt(0, 0)
	}

	rows := layout(m.value, m.width)
	selStart, selEnd, hasSel := m.Selection()
	lines := make([]string, 0, m.height)
	for r := m.offset; r < len(rows) && len(lines) < m.height; r++ {
		rw := rows[r]
		end := rw.end
		if !rw.hard && end > rw.start && m.value[end-1] == ' ' && cells(m.value[rw.start:end]) > m.width {
			end--
		}
		var b strings.Builder
		if hasSel && selStart < end && selEnd > rw.start {
			a := clamp(selStart, rw.start, end)
			z := clamp(selEnd, rw.start, end)
			b.WriteString(text.Render(string(m.value[rw.start:a])))
			b.WriteString(m.styles.Selection.Render(string(m.value[a:z])))
			b.WriteString(text.Render(string(m.value[z:end])))
		} else {
			b.WriteString(text.Render(string(m.value[rw.start:end])))
		}
		used := cells(m.value[rw.start:end])
		if pad := m.width - used; pad > 0 {
			b.WriteString(text.Render(strings.Repeat(" ", pad)))
		}
		lines = append(lines, b.String())
	}
	for len(lines) < m.height {
		lines = append(lines, text.Width(m.width).Render(""))
	}

	r, col := locate(rows, m.value, m.cursor)
	return strings.Join(lines, "\n"), m.cursorAt(min(col, m.width-1), r-m.offset)
}

func (m *Model) cursorAt(x, y int) *tea.Cursor {
	c := tea.NewCursor(x, y)
	c.Color = m.styles.Cursor
	return c
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
