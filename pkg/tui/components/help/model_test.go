package help

import (
	"strings"
	"testing"

	"tableflip.dev/freewrite/pkg/entry"
)

func TestHelpRendersKeys(t *testing.T) {
	m := New(80, 40, entry.ThemeDark)
	if m.err != nil {
		t.Fatalf("unexpected render error: %v", m.err)
	}
	view := m.View()
	if !strings.Contains(view, "ctrl+n") {
		t.Fatalf("expected help to mention ctrl+n, got:\n%s", view)
	}
}

func TestHelpClampsSize(t *testing.T) {
	m := New(4, 2, entry.ThemeLight)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum size 32x8, got %dx%d", m.width, m.height)
	}
}
