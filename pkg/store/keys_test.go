package store

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/freewrite/pkg/collection"
	"tableflip.dev/freewrite/pkg/entry"
)

func TestLoadEntriesMissingKeyIsEmpty(t *testing.T) {
	c, err := LoadEntries(NewMemory(), entry.DefaultPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty collection, got %d", c.Len())
	}
}

func TestLoadEntriesMalformedIsEmptyWithError(t *testing.T) {
	m := NewMemory()
	_ = m.Set(KeyEntries, "{not json")
	c, err := LoadEntries(m, entry.DefaultPrefs())
	if err == nil {
		t.Fatal("expected decode error")
	}
	if c == nil || c.Len() != 0 {
		t.Fatal("expected empty collection alongside the error")
	}
}

func TestSaveEntriesRoundTrip(t *testing.T) {
	m := NewMemory()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	e := entry.New("a", entry.DefaultPrefs(), now)
	e.Content = "hello"
	c := collection.New(e)

	if err := SaveEntries(m, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadEntries(m, entry.DefaultPrefs())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	loaded, ok := got.Get("a")
	if !ok || loaded.Content != "hello" {
		t.Fatalf("unexpected entry %+v (ok=%v)", loaded, ok)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	m := NewMemory()
	if d, err := LoadDraft(m); err != nil || d != "" {
		t.Fatalf("expected empty draft, got %q err=%v", d, err)
	}
	if err := SaveDraft(m, "words"); err != nil {
		t.Fatalf("save draft: %v", err)
	}
	if d, _ := LoadDraft(m); d != "words" {
		t.Fatalf("got %q", d)
	}
}

func TestLoadPrefsFallsBackPerField(t *testing.T) {
	m := NewMemory()
	_ = m.Set(KeyFont, "serif")
	_ = m.Set(KeySize, "not-a-size")
	_ = m.Set(KeyTheme, "purple")

	p, err := LoadPrefs(m, entry.DefaultPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Font != entry.FontSerif {
		t.Errorf("font = %q, want serif", p.Font)
	}
	if p.FontSize != entry.DefaultFontSize {
		t.Errorf("size = %q, want default", p.FontSize)
	}
	if p.Theme != entry.DefaultTheme {
		t.Errorf("theme = %q, want default", p.Theme)
	}
}

func TestSavePrefsWritesEveryKey(t *testing.T) {
	m := NewMemory()
	p := entry.Prefs{Font: entry.FontLato, FontSize: "18", Theme: entry.ThemeLight}
	if err := SavePrefs(m, p); err != nil {
		t.Fatalf("save prefs: %v", err)
	}
	for _, k := range []string{KeyFont, KeySize, KeyTheme} {
		if m.Writes(k) != 1 {
			t.Errorf("expected one write to %s, got %d", k, m.Writes(k))
		}
	}
	got, _ := LoadPrefs(m, entry.DefaultPrefs())
	if got != p {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	boom := errors.New("disk full")
	m.FailWrites(KeyContent, boom)
	if err := SaveDraft(m, "x"); !errors.Is(err, boom) {
		t.Fatalf("expected injected failure, got %v", err)
	}
	m.FailWrites(KeyContent, nil)
	if err := SaveDraft(m, "x"); err != nil {
		t.Fatalf("expected write after clearing failure, got %v", err)
	}
	if m.Writes(KeyContent) != 1 {
		t.Fatalf("failed writes must not count, got %d", m.Writes(KeyContent))
	}
}
