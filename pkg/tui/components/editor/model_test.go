package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func key(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: mod}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func rowTexts(value string, width int) []string {
	rs := []rune(value)
	var out []string
	for _, r := range layout(rs, width) {
		out = append(out, string(rs[r.start:r.end]))
	}
	return out
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  []string
	}{
		{name: "empty", value: "", width: 5, want: []string{""}},
		{name: "fits", value: "hi", width: 5, want: []string{"hi"}},
		{name: "wrap at space", value: "hello world", width: 5, want: []string{"hello ", "world"}},
		{name: "word boundary", value: "one two three", width: 8, want: []string{"one two ", "three"}},
		{name: "long word split", value: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		{name: "newlines", value: "a\n\nb", width: 5, want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowTexts(tt.value, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("layout(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
			}
		})
	}
}

func TestLocateSoftWrapGoesToNextRow(t *testing.T) {
	value := []rune("hello world")
	rows := layout(value, 5)
	r, col := locate(rows, value, 6)
	if r != 1 || col != 0 {
		t.Fatalf("expected row 1 col 0, got row %d col %d", r, col)
	}
	r, col = locate(rows, value, len(value))
	if r != 1 || col != 5 {
		t.Fatalf("expected end of last row, got row %d col %d", r, col)
	}
}

func TestTypingAndDeleting(t *testing.T) {
	m := New()
	m.SetSize(20, 5)
	typeText(m, "hi")
	if m.Value() != "hi" {
		t.Fatalf("expected hi, got %q", m.Value())
	}
	if !m.Update(key(tea.KeyEnter, 0)) || m.Value() != "hi\n" {
		t.Fatalf("expected newline, got %q", m.Value())
	}
	if !m.Update(key(tea.KeyBackspace, 0)) || !m.Update(key(tea.KeyBackspace, 0)) {
		t.Fatalf("expected backspace to change the buffer")
	}
	if m.Value() != "h" {
		t.Fatalf("expected h, got %q", m.Value())
	}
	m.Update(key(tea.KeyLeft, 0))
	if !m.Update(key(tea.KeyDelete, 0)) || m.Value() != "" {
		t.Fatalf("expected delete to empty the buffer, got %q", m.Value())
	}
	if m.Update(key(tea.KeyBackspace, 0)) {
		t.Fatalf("backspace on empty buffer should not report a change")
	}
}

func TestControlKeysAreNotTyped(t *testing.T) {
	m := New()
	if m.Update(key('c', tea.ModCtrl)) {
		t.Fatalf("ctrl+c must not edit the buffer")
	}
	if m.Value() != "" {
		t.Fatalf("expected empty buffer, got %q", m.Value())
	}
}

func TestShiftSelectionReplacedByTyping(t *testing.T) {
	m := New()
	m.SetSize(40, 5)
	m.SetValue("hello world")
	for range 5 {
		m.Update(key(tea.KeyLeft, tea.ModShift))
	}
	if got := m.SelectedText(); got != "world" {
		t.Fatalf("expected selection world, got %q", got)
	}
	typeText(m, "there")
	if m.Value() != "hello there" {
		t.Fatalf("expected replacement, got %q", m.Value())
	}
	if _, _, ok := m.Selection(); ok {
		t.Fatalf("expected selection cleared after typing")
	}
}

func TestSelectAllAndClear(t *testing.T) {
	m := New()
	m.SetValue("abc")
	m.SelectAll()
	if m.SelectedText() != "abc" {
		t.Fatalf("expected whole buffer selected")
	}
	if !m.ClearSelection() {
		t.Fatalf("expected ClearSelection to report a selection")
	}
	if m.ClearSelection() {
		t.Fatalf("expected no selection left")
	}
	m.SelectAll()
	if cut := m.DeleteSelection(); cut != "abc" || m.Value() != "" {
		t.Fatalf("expected cut abc and empty buffer, got %q / %q", cut, m.Value())
	}
}

func TestVerticalMovementKeepsColumn(t *testing.T) {
	m := New()
	m.SetSize(20, 5)
	m.SetValue("ab\ncd")
	m.Update(key(tea.KeyUp, 0))
	if m.Cursor() != 2 {
		t.Fatalf("expected cursor at end of first line, got %d", m.Cursor())
	}
	m.Update(key(tea.KeyHome, 0))
	if m.Cursor() != 0 {
		t.Fatalf("expected home to reach column 0, got %d", m.Cursor())
	}
	m.Update(key(tea.KeyDown, 0))
	if m.Cursor() != 3 {
		t.Fatalf("expected start of second line, got %d", m.Cursor())
	}
	m.Update(key(tea.KeyDown, 0))
	if m.Cursor() != 5 {
		t.Fatalf("expected down on last row to reach the end, got %d", m.Cursor())
	}
}

func TestDeleteWord(t *testing.T) {
	m := New()
	m.SetValue("hello world")
	if !m.Update(key('w', tea.ModCtrl)) {
		t.Fatalf("expected ctrl+w to change the buffer")
	}
	if m.Value() != "hello " {
		t.Fatalf("expected last word removed, got %q", m.Value())
	}
}

func TestPasteNormalizesNewlines(t *testing.T) {
	m := New()
	if !m.Update(tea.PasteMsg("x\r\ny")) {
		t.Fatalf("expected paste to change the buffer")
	}
	if m.Value() != "x\ny" {
		t.Fatalf("expected normalized newline, got %q", m.Value())
	}
}

func TestReplaceKeepsCursor(t *testing.T) {
	m := New()
	m.SetValue("abcdef")
	m.SetCursor(2)
	m.Replace("abcdefgh")
	if m.Cursor() != 2 {
		t.Fatalf("expected cursor kept, got %d", m.Cursor())
	}
	m.Replace("a")
	if m.Cursor() != 1 {
		t.Fatalf("expected cursor clamped, got %d", m.Cursor())
	}
}

func TestViewSizeAndCursor(t *testing.T) {
	m := New()
	m.SetSize(10, 3)
	m.SetValue("hi")
	view, cur := m.View()
	if n := strings.Count(view, "\n") + 1; n != 3 {
		t.Fatalf("expected 3 lines, got %d", n)
	}
	if cur == nil || cur.X != 2 || cur.Y != 0 {
		t.Fatalf("expected cursor at 2,0, got %+v", cur)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := New()
	m.SetSize(10, 2)
	m.SetValue("a\nb\nc\nd")
	if m.offset != 2 {
		t.Fatalf("expected offset 2, got %d", m.offset)
	}
	m.Update(key(tea.KeyHome, tea.ModCtrl))
	if m.offset != 0 {
		t.Fatalf("expected offset 0 after ctrl+home, got %d", m.offset)
	}
}
