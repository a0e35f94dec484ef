package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/freewrite/pkg/collection"
	"tableflip.dev/freewrite/pkg/debounce"
	"tableflip.dev/freewrite/pkg/draft"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/export"
	"tableflip.dev/freewrite/pkg/logging"
	"tableflip.dev/freewrite/pkg/store"
)

// Options configure a Session. Only Store is required.
type Options struct {
	Store store.KV
	// Confirm is consulted before unsaved changes would be left behind. It
	// must not call back into the Session. Nil always saves.
	Confirm  ConfirmFunc
	Notify   NotifyFunc
	Exporter export.Exporter
	Logger   logging.Logger
	// Debounce is the quiet period before an edit is autosaved.
	Debounce time.Duration
	// Defaults apply when the store holds no preferences.
	Defaults  entry.Prefs
	Now       func() time.Time
	NewID     func() string
	AfterFunc debounce.AfterFunc
}

// Session is one editor: the open entry, its draft buffer, the live
// preferences and the collection of saved entries. Methods are safe to call
// from the UI goroutine while the autosave timer fires on its own.
type Session struct {
	mu sync.Mutex

	kv       store.KV
	confirm  ConfirmFunc
	notify   NotifyFunc
	exporter export.Exporter
	log      logging.Logger
	now      func() time.Time
	newID    func() string
	defaults entry.Prefs

	entries *collection.Collection
	// open is a copy; it is written back to entries only by saving.
	open       entry.Entry
	draft      *draft.Draft
	prefs      entry.Prefs
	prefsDirty bool

	autosave *debounce.Trailing
	closed   bool
}

// Open loads state from the store and returns a ready session. With saved
// entries the most recently updated one is opened; otherwise a new entry is
// started from the raw draft buffer.
func Open(ctx context.Context, opts Options) (*Session, error) {
	if opts.Store == nil {
		return nil, errNoStore
	}
	s := &Session{
		kv:       opts.Store,
		confirm:  opts.Confirm,
		notify:   opts.Notify,
		exporter: opts.Exporter,
		log:      opts.Logger,
		now:      opts.Now,
		newID:    opts.NewID,
		defaults: opts.Defaults.Normalize(entry.DefaultPrefs()),
	}
	if s.confirm == nil {
		s.confirm = func(string) bool { return true }
	}
	if s.notify == nil {
		s.notify = func(Notification) {}
	}
	if s.exporter == nil {
		s.exporter = export.File{}
	}
	if s.log == nil {
		s.log = logging.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = entry.NewID
	}
	delay := opts.Debounce
	if delay <= 0 {
		delay = store.DefaultDebounce
	}
	var dopts []debounce.Option
	if opts.AfterFunc != nil {
		dopts = append(dopts, debounce.WithAfterFunc(opts.AfterFunc))
	}
	s.autosave = debounce.New(delay, s.autosaveNow, dopts...)

	prefs, err := store.LoadPrefs(s.kv, s.defaults)
	if err != nil {
		s.log.Warn(ctx, "preferences unreadable, using defaults", "err", err)
	}
	s.prefs = prefs

	entries, err := store.LoadEntries(s.kv, s.prefs)
	if err != nil {
		s.log.Warn(ctx, "entries unreadable, starting empty", "err", err)
		s.notify(Notification{Level: LevelWarn, Message: "Saved entries could not be read", Err: err})
	}
	s.entries = entries

	if all := entries.Entries(); len(all) > 0 {
		s.draft = draft.New("")
		s.loadLocked(all[0])
		return s, nil
	}

	raw, err := store.LoadDraft(s.kv)
	if err != nil {
		s.log.Warn(ctx, "draft unreadable", "err", err)
	}
	s.open = entry.New(s.newID(), s.prefs, s.now())
	s.draft = draft.New(raw)
	if !s.draft.Blank() && s.saveLocked() == nil {
		s.log.Info(ctx, "draft adopted as first entry", "id", s.open.ID)
	}
	return s, nil
}

func (s *Session) ctx() context.Context { return context.Background() }

// autosaveNow is the debounced effect.
func (s *Session) autosaveNow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if !s.draft.Dirty() && !s.prefsDirty {
		return
	}
	_ = s.saveLocked()
}

// saveLocked upserts the open entry with the current buffer and preferences
// and writes the collection and the raw buffer. A blank buffer is never
// saved. If the collection write fails nothing in memory changes and the
// user is notified. The raw buffer key is secondary and only logged.
func (s *Session) saveLocked() error {
	if s.draft.Blank() {
		return nil
	}
	e := s.open
	e.Content = s.draft.Content()
	e.ApplyPrefs(s.prefs)
	e.Touch(s.now())

	next := s.entries.Clone()
	next.Upsert(e)
	if err := store.SaveEntries(s.kv, next); err != nil {
		s.failed("Autosave failed", err)
		return err
	}
	s.entries = next
	s.open = e
	s.draft.MarkSaved()
	if err := store.SaveDraft(s.kv, e.Content); err != nil {
		s.log.Warn(s.ctx(), "draft not written", "err", err)
	}
	s.prefsDirty = false
	s.log.Debug(s.ctx(), "entry saved", "id", e.ID, "words", s.draft.WordCount())
	return nil
}

func (s *Session) failed(msg string, err error) {
	s.log.Error(s.ctx(), msg, "err", err)
	s.notify(Notification{Level: LevelError, Message: msg, Err: err})
}

// loadLocked makes e the open entry and adopts its content and look.
func (s *Session) loadLocked(e entry.Entry) {
	s.open = e
	s.draft.Load(e.Content)
	s.prefs = e.Prefs().Normalize(s.prefs)
	s.prefsDirty = false
	if err := store.SaveDraft(s.kv, e.Content); err != nil {
		s.log.Warn(s.ctx(), "draft not written", "err", err)
	}
	if err := store.SavePrefs(s.kv, s.prefs); err != nil {
		s.log.Warn(s.ctx(), "preferences not written", "err", err)
	}
}

// freshLocked opens a new empty entry without adding it to the collection.
// It becomes a member the first time it is saved with content.
func (s *Session) freshLocked() {
	s.open = entry.New(s.newID(), s.prefs, s.now())
	s.draft.Load("")
	s.prefsDirty = false
}

// settleLocked resolves unsaved work before the open entry changes. A
// dirty, non-blank draft goes through Confirm; changed preferences alone are
// saved without asking. It returns an error only if a requested save failed,
// in which case the caller must not switch away.
func (s *Session) settleLocked(message string) error {
	s.autosave.Cancel()
	switch {
	case s.draft.Dirty() && !s.draft.Blank():
		if s.confirm(message) {
			return s.saveLocked()
		}
		s.log.Info(s.ctx(), "unsaved changes discarded", "id", s.open.ID)
	case s.prefsDirty && !s.draft.Blank():
		return s.saveLocked()
	}
	return nil
}

// SetContent replaces the buffer and schedules an autosave.
func (s *Session) SetContent(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.SetContent(text) {
		s.autosave.Trigger()
	}
}

// Save writes the open entry now, skipping the debounce window.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autosave.Cancel()
	return s.saveLocked()
}

// Flush saves any pending autosave immediately.
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.autosave.Pending() {
		return nil
	}
	s.autosave.Cancel()
	return s.saveLocked()
}

// Close flushes pending work and stops autosaving.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.autosave.Stop()
	var err error
	if s.draft.Dirty() || s.prefsDirty {
		err = s.saveLocked()
	}
	s.closed = true
	return err
}

// CreateNewEntry starts an empty entry with the current preferences and
// makes it both open and a member of the collection.
func (s *Session) CreateNewEntry() (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.settleLocked(confirmNewEntry); err != nil {
		return entry.Entry{}, err
	}
	e := entry.New(s.newID(), s.prefs, s.now())
	next := s.entries.Clone()
	next.Upsert(e)
	if err := store.SaveEntries(s.kv, next); err != nil {
		s.failed("New entry could not be saved", err)
		return entry.Entry{}, err
	}
	if err := store.SaveDraft(s.kv, ""); err != nil {
		s.log.Warn(s.ctx(), "draft not cleared", "err", err)
	}
	s.entries = next
	s.open = e
	s.draft.Load("")
	s.prefsDirty = false
	s.log.Info(s.ctx(), "entry created", "id", e.ID)
	return e, nil
}

// SelectEntry opens id, loading its content and preferences.
func (s *Session) SelectEntry(id string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.open.ID {
		return s.currentLocked(), nil
	}
	if !s.entries.Has(id) {
		return entry.Entry{}, ErrNotFound
	}
	if err := s.settleLocked(confirmSelect); err != nil {
		return entry.Entry{}, err
	}
	target, ok := s.entries.Get(id)
	if !ok {
		return entry.Entry{}, ErrNotFound
	}
	s.loadLocked(target)
	s.log.Debug(s.ctx(), "entry opened", "id", id)
	return s.currentLocked(), nil
}

// DeleteEntry removes id without asking. Deleting the open entry discards
// its draft and replaces it with a new empty member of the collection, so
// the editor never holds an id the collection lacks.
func (s *Session) DeleteEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.entries.Has(id) {
		return ErrNotFound
	}
	next := s.entries.Clone()
	next.Delete(id)
	var fresh *entry.Entry
	if id == s.open.ID {
		e := entry.New(s.newID(), s.prefs, s.now())
		next.Upsert(e)
		fresh = &e
	}
	if err := store.SaveEntries(s.kv, next); err != nil {
		s.failed("Entry could not be deleted", err)
		return err
	}
	s.entries = next
	if fresh != nil {
		s.autosave.Cancel()
		s.open = *fresh
		s.draft.Load("")
		s.prefsDirty = false
		if err := store.SaveDraft(s.kv, ""); err != nil {
			s.log.Warn(s.ctx(), "draft not cleared", "err", err)
		}
		s.log.Info(s.ctx(), "entry created", "id", fresh.ID)
	}
	s.log.Info(s.ctx(), "entry deleted", "id", id)
	return nil
}

// ClearAll deletes every entry and opens a fresh one.
func (s *Session) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := collection.New()
	if err := store.SaveEntries(s.kv, next); err != nil {
		s.failed("Entries could not be cleared", err)
		return err
	}
	if err := store.SaveDraft(s.kv, ""); err != nil {
		s.log.Warn(s.ctx(), "draft not cleared", "err", err)
	}
	s.entries = next
	s.autosave.Cancel()
	s.freshLocked()
	s.log.Info(s.ctx(), "entries cleared")
	return nil
}

// RenameEntry sets the title of id; blank titles become "Untitled". The open
// entry can always be renamed, even before its first save.
func (s *Session) RenameEntry(id, title string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	title = entry.NormalizeTitle(title)
	e, ok := s.entries.Get(id)
	if !ok {
		if id != s.open.ID {
			return entry.Entry{}, ErrNotFound
		}
		s.open.Title = title
		return s.currentLocked(), nil
	}
	e.Title = title
	next := s.entries.Clone()
	next.Upsert(e)
	if err := store.SaveEntries(s.kv, next); err != nil {
		s.failed("Entry could not be renamed", err)
		return entry.Entry{}, err
	}
	s.entries = next
	if id == s.open.ID {
		s.open.Title = title
		return s.currentLocked(), nil
	}
	return e, nil
}

// Entries returns the saved entries, most recently updated first.
func (s *Session) Entries() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Entries()
}

// Search filters Entries by a case-insensitive substring of content or title.
func (s *Session) Search(query string) []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Search(query)
}

// Get returns the stored entry with id.
func (s *Session) Get(id string) (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Get(id)
}

// Current is the open entry as the editor shows it: live buffer and look.
func (s *Session) Current() entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() entry.Entry {
	e := s.open
	e.Content = s.draft.Content()
	e.Font, e.FontSize, e.Theme = s.prefs.Font, s.prefs.FontSize, s.prefs.Theme
	return e
}

// Saved reports whether the open entry is in the collection yet.
func (s *Session) Saved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Has(s.open.ID)
}

// Content is the live editor buffer.
func (s *Session) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Content()
}

// Dirty reports whether the buffer differs from what was last saved or
// loaded.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Dirty()
}

// UnsavedChanges reports whether switching away now would ask for
// confirmation.
func (s *Session) UnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Dirty() && !s.draft.Blank()
}

// WordCount counts the words in the buffer.
func (s *Session) WordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.WordCount()
}

// Stats summarises the buffer for the status line.
func (s *Session) Stats() draft.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Stats()
}

// Undo steps the buffer back one snapshot and reschedules autosave.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.draft.Undo() {
		return false
	}
	s.autosave.Trigger()
	return true
}

// Redo reapplies the last undone snapshot.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.draft.Redo() {
		return false
	}
	s.autosave.Trigger()
	return true
}

// Prefs are the font, size and theme in effect.
func (s *Session) Prefs() entry.Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetFont switches the font. "random" picks a concrete font now.
func (s *Session) SetFont(raw string) (entry.Font, error) {
	f, err := entry.ParseFont(raw)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs
	p.Font = f.Resolve()
	s.setPrefsLocked(p)
	return p.Font, nil
}

// CycleFont moves to the next font in the menu.
func (s *Session) CycleFont() entry.Font {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs
	p.Font = p.Font.Next().Resolve()
	s.setPrefsLocked(p)
	return p.Font
}

func (s *Session) SetFontSize(raw string) (string, error) {
	size, err := entry.ParseFontSize(raw)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs
	p.FontSize = size
	s.setPrefsLocked(p)
	return size, nil
}

// Zoom steps the font size by delta steps of entry.ZoomStep pixels.
func (s *Session) Zoom(delta int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs
	p.FontSize = entry.ZoomFontSize(p.FontSize, delta*entry.ZoomStep)
	s.setPrefsLocked(p)
	return p.FontSize
}

func (s *Session) SetTheme(raw string) (entry.Theme, error) {
	t, err := entry.ParseTheme(raw)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs
	p.Theme = t
	s.setPrefsLocked(p)
	return t, nil
}

func (s *Session) ToggleTheme() entry.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs
	p.Theme = p.Theme.Toggle()
	s.setPrefsLocked(p)
	return p.Theme
}

// setPrefsLocked stores p as the live look, writes the preference keys at
// once and schedules an autosave so the open entry picks it up.
func (s *Session) setPrefsLocked(p entry.Prefs) {
	if p == s.prefs {
		return
	}
	s.prefs = p
	if err := store.SavePrefs(s.kv, p); err != nil {
		s.failed("Preferences could not be saved", err)
	}
	s.prefsDirty = true
	if !s.draft.Blank() {
		s.autosave.Trigger()
	}
}

// SaveToFile writes the buffer, exactly as it is, to path. The outcome is
// also reported through Notify.
func (s *Session) SaveToFile(ctx context.Context, path string) error {
	s.mu.Lock()
	content := s.draft.Content()
	exp := s.exporter
	s.mu.Unlock()

	target, err := export.ExpandPath(path)
	if err == nil {
		err = exp.Export(ctx, target, content)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failed("Could not save file", err)
		return err
	}
	s.log.Info(ctx, "buffer exported", "path", target)
	s.notify(Notification{Level: LevelInfo, Message: fmt.Sprintf("Saved to %s", target)})
	return nil
}

// SuggestedFileName names the open entry for SaveToFile.
func (s *Session) SuggestedFileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return export.DefaultFileName(s.open.Title, s.now())
}

// Reload re-reads the collection after another process changed it. The
// buffer is replaced only when it has no unsaved edits.
func (s *Session) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := store.LoadEntries(s.kv, s.prefs)
	if err != nil {
		s.log.Warn(ctx, "reload skipped, entries unreadable", "err", err)
		return err
	}
	s.entries = entries
	e, ok := entries.Get(s.open.ID)
	if !ok {
		return nil
	}
	s.open.Title = e.Title
	s.open.CreatedAt = e.CreatedAt
	s.open.UpdatedAt = e.UpdatedAt
	if !s.draft.Dirty() && e.Content != s.draft.Content() {
		s.draft.Load(e.Content)
		s.open.Content = e.Content
	}
	return nil
}
