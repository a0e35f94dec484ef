package history

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/tui/theme"
)

var t0 = time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)

func mk(id, title, content string, offset time.Duration) entry.Entry {
	e := entry.New(id, entry.DefaultPrefs(), t0.Add(offset))
	e.Title = title
	e.Content = content
	return e
}

func press(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func newPanel(entries ...entry.Entry) *Model {
	m := New(theme.For(entry.ThemeDark).Panel)
	m.SetSize(40, 20)
	m.SetEntries(entries, "")
	return m
}

func TestSelectionStartsOnCurrentEntry(t *testing.T) {
	m := New(theme.For(entry.ThemeDark).Panel)
	m.SetSize(40, 20)
	m.SetEntries([]entry.Entry{
		mk("b", "B", "second", time.Hour),
		mk("a", "A", "first", 0),
	}, "a")
	sel, ok := m.Selected()
	if !ok || sel.ID != "a" {
		t.Fatalf("expected current entry selected, got %+v", sel)
	}
}

func TestActions(t *testing.T) {
	m := newPanel(mk("b", "B", "second", time.Hour), mk("a", "A", "first", 0))

	if act, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyDown}); act != ActionNone {
		t.Fatalf("expected navigation to return no action, got %v", act)
	}
	if sel, _ := m.Selected(); sel.ID != "a" {
		t.Fatalf("expected second row selected, got %s", sel.ID)
	}
	tests := []struct {
		msg  tea.KeyPressMsg
		want Action
	}{
		{msg: tea.KeyPressMsg{Code: tea.KeyEnter}, want: ActionOpen},
		{msg: press("r"), want: ActionRename},
		{msg: press("d"), want: ActionDelete},
		{msg: press("C"), want: ActionClearAll},
		{msg: tea.KeyPressMsg{Code: tea.KeyEscape}, want: ActionClose},
	}
	for _, tt := range tests {
		if act, _ := m.Update(tt.msg); act != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.msg.String(), tt.want, act)
		}
	}
}

func TestEmptyPanelHasNoEntryActions(t *testing.T) {
	m := newPanel()
	for _, msg := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, press("d"), press("r"), press("C")} {
		if act, _ := m.Update(msg); act != ActionNone {
			t.Fatalf("%s: expected no action on empty panel, got %v", msg.String(), act)
		}
	}
	if !strings.Contains(m.View(), "No saved entries yet.") {
		t.Fatalf("expected empty message in view")
	}
}

func TestFilterMatchesContentAndTitle(t *testing.T) {
	m := newPanel(
		mk("c", "Groceries", "milk and eggs", 2*time.Hour),
		mk("b", "Dream", "the sea was green", time.Hour),
		mk("a", "Untitled", "a list of errands", 0),
	)
	m.Update(press("/"))
	if !m.Filtering() {
		t.Fatalf("expected filter mode")
	}
	for _, r := range "SEA" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if m.Query() != "SEA" {
		t.Fatalf("expected query SEA, got %q", m.Query())
	}
	if m.Len() != 1 {
		t.Fatalf("expected one match, got %d", m.Len())
	}
	if sel, _ := m.Selected(); sel.ID != "b" {
		t.Fatalf("expected dream entry, got %s", sel.ID)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Filtering() {
		t.Fatalf("expected enter to leave filter mode")
	}
	if m.Query() != "SEA" {
		t.Fatalf("expected query kept after enter")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Query() != "" || m.Len() != 3 {
		t.Fatalf("expected esc to clear the filter, got %q with %d rows", m.Query(), m.Len())
	}
}

func TestFilterWithNoMatches(t *testing.T) {
	m := newPanel(mk("a", "A", "alpha", 0))
	m.Update(press("/"))
	for _, r := range "zzz" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if m.Len() != 0 {
		t.Fatalf("expected no rows, got %d", m.Len())
	}
	if !strings.Contains(m.View(), "Nothing matches") {
		t.Fatalf("expected no-match message")
	}
}
