package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/freewrite/pkg/collection"
	"tableflip.dev/freewrite/pkg/debounce"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/store"
)

type fakeClock struct {
	t time.Time
}

// Now advances one second per call so successive saves are ordered.
func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type harness struct {
	t        *testing.T
	kv       *store.Memory
	timers   *debounce.Manual
	clock    *fakeClock
	notes    []Notification
	confirms []string
	answer   bool
	session  *Session
}

func newHarness(t *testing.T, seed func(kv *store.Memory)) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		kv:     store.NewMemory(),
		timers: &debounce.Manual{},
		clock:  &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		answer: true,
	}
	if seed != nil {
		seed(h.kv)
	}
	n := 0
	s, err := Open(context.Background(), Options{
		Store: h.kv,
		Confirm: func(msg string) bool {
			h.confirms = append(h.confirms, msg)
			return h.answer
		},
		Notify:    func(n Notification) { h.notes = append(h.notes, n) },
		Now:       h.clock.Now,
		NewID:     func() string { n++; return fmt.Sprintf("id-%d", n) },
		AfterFunc: h.timers.AfterFunc,
	})
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	h.session = s
	return h
}

func (h *harness) stored() *collection.Collection {
	h.t.Helper()
	c, err := store.LoadEntries(h.kv, entry.DefaultPrefs())
	if err != nil {
		h.t.Fatalf("load stored entries: %v", err)
	}
	return c
}

func TestBurstOfEditsWritesOnce(t *testing.T) {
	h := newHarness(t, nil)
	for _, text := range []string{"h", "he", "hel", "hell", "hello"} {
		h.session.SetContent(text)
	}
	if got := h.kv.Writes(store.KeyEntries); got != 0 {
		t.Fatalf("expected no writes inside the debounce window, got %d", got)
	}
	h.timers.Fire()
	if got := h.kv.Writes(store.KeyEntries); got != 1 {
		t.Fatalf("expected exactly one entries write, got %d", got)
	}
	if h.session.Dirty() {
		t.Fatal("expected clean draft after autosave")
	}
	if raw, _ := store.LoadDraft(h.kv); raw != "hello" {
		t.Fatalf("raw draft = %q", raw)
	}
}

func TestAutosaveUpdatesSameEntry(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("hello")
	h.timers.Fire()
	first := h.session.Entries()
	if len(first) != 1 {
		t.Fatalf("expected one entry, got %d", len(first))
	}

	h.session.SetContent("hello world")
	h.timers.Fire()
	second := h.session.Entries()
	if len(second) != 1 {
		t.Fatalf("expected still one entry, got %d", len(second))
	}
	if second[0].ID != first[0].ID {
		t.Fatalf("id changed from %s to %s", first[0].ID, second[0].ID)
	}
	if !second[0].UpdatedAt.After(first[0].UpdatedAt.Time) {
		t.Fatal("expected updatedAt to advance")
	}
	if second[0].Content != "hello world" {
		t.Fatalf("content = %q", second[0].Content)
	}
	if h.stored().Len() != 1 {
		t.Fatal("store should mirror the collection")
	}
}

func TestBlankBufferIsNeverSaved(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("   \n\t")
	h.timers.Fire()
	if h.kv.Writes(store.KeyEntries) != 0 {
		t.Fatal("blank buffer must not be saved")
	}
	if err := h.session.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if h.kv.Writes(store.KeyEntries) != 0 {
		t.Fatal("explicit save of a blank buffer must be a no-op")
	}
}

func TestStoreFailureNotifiesAndKeepsDraft(t *testing.T) {
	h := newHarness(t, nil)
	boom := errors.New("disk full")
	h.kv.FailWrites(store.KeyEntries, boom)

	h.session.SetContent("precious words")
	h.timers.Fire()

	if len(h.notes) != 1 || h.notes[0].Level != LevelError || !errors.Is(h.notes[0].Err, boom) {
		t.Fatalf("expected one error notification, got %+v", h.notes)
	}
	if !h.session.Dirty() || h.session.Content() != "precious words" {
		t.Fatal("draft must survive a failed write")
	}
	if len(h.session.Entries()) != 0 {
		t.Fatal("collection must not change on a failed write")
	}

	h.kv.FailWrites(store.KeyEntries, nil)
	if err := h.session.Save(); err != nil {
		t.Fatalf("retry save: %v", err)
	}
	if h.stored().Len() != 1 {
		t.Fatal("expected the retry to persist the entry")
	}
}

func TestCanonicalOrder(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("entry A")
	if err := h.session.Save(); err != nil {
		t.Fatalf("save A: %v", err)
	}
	a := h.session.Current().ID

	b, err := h.session.CreateNewEntry()
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	h.session.SetContent("entry B")
	if err := h.session.Save(); err != nil {
		t.Fatalf("save B: %v", err)
	}

	got := h.session.Entries()
	if len(got) != 2 || got[0].ID != b.ID || got[1].ID != a {
		t.Fatalf("expected [B, A], got %v", ids(got))
	}
}

func TestCreateNewEntryPromptsOnlyWhenDirty(t *testing.T) {
	h := newHarness(t, nil)

	if _, err := h.session.CreateNewEntry(); err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if len(h.confirms) != 0 {
		t.Fatal("clean draft should not prompt")
	}

	h.session.SetContent("unsaved thought")
	h.answer = true
	e, err := h.session.CreateNewEntry()
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if len(h.confirms) != 1 {
		t.Fatalf("expected one prompt, got %d", len(h.confirms))
	}
	if h.session.Current().ID != e.ID || h.session.Content() != "" || h.session.Dirty() {
		t.Fatal("expected a clean empty entry to be open")
	}
	if _, ok := h.session.Get(e.ID); !ok {
		t.Fatal("new entry should be a collection member")
	}
	if len(h.session.Search("unsaved thought")) != 1 {
		t.Fatal("confirmed save should have kept the previous text")
	}
	if h.timers.Fire() != 0 {
		t.Fatal("pending autosave should have been settled before switching")
	}
}

func TestCreateNewEntryDiscard(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("kept")
	if err := h.session.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	h.session.SetContent("kept and then some")
	h.answer = false
	if _, err := h.session.CreateNewEntry(); err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if len(h.session.Search("then some")) != 0 {
		t.Fatal("discarded edits must not be saved")
	}
	if len(h.session.Search("kept")) != 1 {
		t.Fatal("the last saved text must remain")
	}
}

func TestWhitespaceEditsDoNotPrompt(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("   ")
	if _, err := h.session.CreateNewEntry(); err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if len(h.confirms) != 0 {
		t.Fatal("whitespace-only draft should not prompt")
	}
}

func TestSelectEntryLoadsContentAndPrefs(t *testing.T) {
	h := newHarness(t, nil)
	if _, err := h.session.SetFont("serif"); err != nil {
		t.Fatalf("set font: %v", err)
	}
	h.session.SetContent("first")
	if err := h.session.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	first := h.session.Current().ID

	if _, err := h.session.CreateNewEntry(); err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if _, err := h.session.SetFont("lato"); err != nil {
		t.Fatalf("set font: %v", err)
	}
	h.session.SetContent("second")

	got, err := h.session.SelectEntry(first)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(h.confirms) != 1 {
		t.Fatalf("expected a prompt for the dirty draft, got %d", len(h.confirms))
	}
	if got.Content != "first" || h.session.Content() != "first" {
		t.Fatalf("content = %q", h.session.Content())
	}
	if h.session.Prefs().Font != entry.FontSerif {
		t.Fatalf("font = %q, want serif", h.session.Prefs().Font)
	}
	if h.session.Dirty() {
		t.Fatal("freshly selected entry should be clean")
	}
	if len(h.session.Search("second")) != 1 {
		t.Fatal("the confirmed draft should have been saved")
	}
}

func TestSelectEntryUnknownID(t *testing.T) {
	h := newHarness(t, nil)
	if _, err := h.session.SelectEntry("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteOpenEntryOpensFreshOne(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("doomed")
	if err := h.session.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	doomed := h.session.Current().ID
	h.session.SetContent("doomed, edited")

	if err := h.session.DeleteEntry(doomed); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(h.confirms) != 0 {
		t.Fatal("delete must not prompt")
	}
	cur := h.session.Current()
	if cur.ID == "" || cur.ID == doomed || cur.Content != "" {
		t.Fatalf("expected a fresh empty entry, got %+v", cur)
	}
	if h.stored().Has(doomed) {
		t.Fatal("deleted entry must be gone from the store")
	}
	if !h.session.Saved() || !h.stored().Has(cur.ID) {
		t.Fatalf("fresh entry %s must be a stored member", cur.ID)
	}
	if h.timers.Fire() != 0 || h.stored().Len() != 1 {
		t.Fatal("pending autosave of the deleted entry must not resurrect it")
	}
	if got, _ := h.stored().Get(cur.ID); got.Content != "" {
		t.Fatalf("fresh entry content = %q", got.Content)
	}
}

func TestDraftKeyFailureStillCommitsEntries(t *testing.T) {
	h := newHarness(t, nil)
	h.kv.FailWrites(store.KeyContent, errors.New("read-only"))

	h.session.SetContent("kept anyway")
	if err := h.session.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if h.session.Dirty() || !h.session.Saved() {
		t.Fatal("session must agree with the stored collection")
	}
	got, ok := h.stored().Get(h.session.Current().ID)
	if !ok || got.Content != "kept anyway" {
		t.Fatalf("stored entry = %+v, %v", got, ok)
	}
	if len(h.notes) != 0 {
		t.Fatalf("raw buffer failure must not notify, got %+v", h.notes)
	}
}

func TestDeleteOtherEntryKeepsDraft(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("other")
	_ = h.session.Save()
	other := h.session.Current().ID
	_, _ = h.session.CreateNewEntry()
	h.session.SetContent("mine")

	if err := h.session.DeleteEntry(other); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if h.session.Content() != "mine" {
		t.Fatalf("draft changed to %q", h.session.Content())
	}
	if err := h.session.DeleteEntry(other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClearAll(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("one")
	_ = h.session.Save()
	_, _ = h.session.CreateNewEntry()
	h.session.SetContent("two")

	if err := h.session.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(h.session.Entries()) != 0 || h.stored().Len() != 0 {
		t.Fatal("expected an empty collection")
	}
	if h.session.Content() != "" || h.session.Dirty() {
		t.Fatal("expected a fresh clean entry")
	}
	h.timers.Fire()
	if h.stored().Len() != 0 {
		t.Fatal("clear must cancel the pending autosave")
	}

	h.session.SetContent("after clear")
	h.timers.Fire()
	if h.stored().Len() != 1 {
		t.Fatal("the fresh entry joins the collection on its first save")
	}
}

func TestRenameEntry(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("text")
	_ = h.session.Save()
	id := h.session.Current().ID

	if _, err := h.session.RenameEntry(id, "  Morning pages "); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if h.session.Current().Title != "Morning pages" {
		t.Fatalf("title = %q", h.session.Current().Title)
	}
	stored, _ := h.stored().Get(id)
	if stored.Title != "Morning pages" {
		t.Fatalf("stored title = %q", stored.Title)
	}

	if _, err := h.session.RenameEntry(id, "   "); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if h.session.Current().Title != entry.DefaultTitle {
		t.Fatalf("blank title should become %q", entry.DefaultTitle)
	}
	if _, err := h.session.RenameEntry("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("The Quick brown fox")
	_ = h.session.Save()
	_, _ = h.session.CreateNewEntry()
	h.session.SetContent("lazy dog")
	_ = h.session.Save()

	if got := h.session.Search("QUICK"); len(got) != 1 {
		t.Fatalf("expected one match, got %d", len(got))
	}
	if got := h.session.Search(""); len(got) != 2 {
		t.Fatalf("empty query should return all, got %d", len(got))
	}
	if got := h.session.Search("cat"); len(got) != 0 {
		t.Fatalf("expected no match, got %d", len(got))
	}
}

func TestUndoRedoReschedulesAutosave(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("a")
	h.session.SetContent("ab")
	h.session.SetContent("abc")
	h.timers.Fire()

	if !h.session.Undo() || h.session.Content() != "ab" {
		t.Fatalf("undo: %q", h.session.Content())
	}
	if !h.session.Undo() || h.session.Content() != "a" {
		t.Fatalf("undo: %q", h.session.Content())
	}
	if !h.session.Redo() || h.session.Content() != "ab" {
		t.Fatalf("redo: %q", h.session.Content())
	}
	h.timers.Fire()
	if got := h.session.Entries()[0].Content; got != "ab" {
		t.Fatalf("saved content = %q", got)
	}
}

func TestPrefsPersistAndSnapshot(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("styled")
	h.timers.Fire()

	if theme := h.session.ToggleTheme(); theme != entry.ThemeLight {
		t.Fatalf("theme = %q", theme)
	}
	if v, _, _ := h.kv.Get(store.KeyTheme); v != "light" {
		t.Fatalf("theme key = %q", v)
	}
	if size := h.session.Zoom(1); size != "26" {
		t.Fatalf("zoomed size = %q", size)
	}
	if _, err := h.session.SetFontSize("abc"); !errors.Is(err, entry.ErrInvalidFontSize) {
		t.Fatalf("expected ErrInvalidFontSize, got %v", err)
	}
	h.timers.Fire()
	saved := h.session.Entries()[0]
	if saved.Theme != entry.ThemeLight || saved.FontSize != "26" {
		t.Fatalf("entry did not snapshot prefs: %+v", saved.Prefs())
	}
}

func TestRandomFontResolves(t *testing.T) {
	h := newHarness(t, nil)
	f, err := h.session.SetFont("random")
	if err != nil {
		t.Fatalf("set font: %v", err)
	}
	if f == entry.FontRandom || h.session.Prefs().Font == entry.FontRandom {
		t.Fatal("random must resolve to a concrete font")
	}
}

func TestOpenAdoptsLegacyDraft(t *testing.T) {
	h := newHarness(t, func(kv *store.Memory) {
		_ = kv.Set(store.KeyContent, "left over from last time")
		_ = kv.Set(store.KeyTheme, "light")
	})
	if h.session.Content() != "left over from last time" {
		t.Fatalf("content = %q", h.session.Content())
	}
	if h.stored().Len() != 1 {
		t.Fatal("non-empty draft should become the first entry")
	}
	if h.session.Prefs().Theme != entry.ThemeLight {
		t.Fatal("stored theme should be honoured")
	}
}

func TestOpenSelectsMostRecent(t *testing.T) {
	old := entry.New("old", entry.DefaultPrefs(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	old.Content = "old"
	recent := entry.New("recent", entry.DefaultPrefs(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	recent.Content = "recent"
	recent.Theme = entry.ThemeLight

	h := newHarness(t, func(kv *store.Memory) {
		_ = store.SaveEntries(kv, collection.New(old, recent))
	})
	cur := h.session.Current()
	if cur.ID != "recent" || cur.Content != "recent" || cur.Theme != entry.ThemeLight {
		t.Fatalf("unexpected open entry %+v", cur)
	}
}

func TestOpenMalformedEntries(t *testing.T) {
	h := newHarness(t, func(kv *store.Memory) {
		_ = kv.Set(store.KeyEntries, "[{broken")
	})
	if len(h.session.Entries()) != 0 {
		t.Fatal("malformed entries should load as empty")
	}
	if len(h.notes) != 1 || h.notes[0].Level != LevelWarn {
		t.Fatalf("expected a warning, got %+v", h.notes)
	}
}

func TestReloadPicksUpExternalChanges(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("mine")
	_ = h.session.Save()
	id := h.session.Current().ID

	c := h.stored()
	e, _ := c.Get(id)
	e.Title = "Renamed elsewhere"
	e.Content = "changed elsewhere"
	c.Upsert(e)
	c.Upsert(entry.New("external", entry.DefaultPrefs(), time.Now()))
	_ = store.SaveEntries(h.kv, c)

	if err := h.session.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(h.session.Entries()) != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", len(h.session.Entries()))
	}
	cur := h.session.Current()
	if cur.Title != "Renamed elsewhere" || cur.Content != "changed elsewhere" {
		t.Fatalf("clean draft should follow the store, got %+v", cur)
	}

	h.session.SetContent("local edit")
	_ = store.SaveEntries(h.kv, c)
	_ = h.session.Reload(context.Background())
	if h.session.Content() != "local edit" {
		t.Fatal("reload must not clobber unsaved edits")
	}
}

func TestCloseFlushesPendingSave(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("last words")
	if err := h.session.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if h.stored().Len() != 1 {
		t.Fatal("close should flush the pending save")
	}
	h.timers.Fire()
	if h.kv.Writes(store.KeyEntries) != 1 {
		t.Fatal("no autosave may run after close")
	}
}

func TestSaveToFile(t *testing.T) {
	h := newHarness(t, nil)
	h.session.SetContent("export me\n")
	target := filepath.Join(t.TempDir(), "out.txt")

	if err := h.session.SaveToFile(context.Background(), target); err != nil {
		t.Fatalf("save to file: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "export me\n" {
		t.Fatalf("file content = %q", data)
	}
	if len(h.notes) != 1 || h.notes[0].Level != LevelInfo {
		t.Fatalf("expected a success notification, got %+v", h.notes)
	}
	if h.session.Content() != "export me\n" {
		t.Fatal("buffer must be unchanged")
	}

	if err := h.session.SaveToFile(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty path")
	}
	if last := h.notes[len(h.notes)-1]; last.Level != LevelError {
		t.Fatalf("expected an error notification, got %+v", last)
	}
}

func ids(entries []entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
