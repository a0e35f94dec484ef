package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/freewrite/pkg/collection"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/export"
	"tableflip.dev/freewrite/pkg/logging"
	"tableflip.dev/freewrite/pkg/store"
)

// ErrNotFound is returned for ids that are not in the collection.
var ErrNotFound = errors.New("app: entry not found")

var errNoStore = errors.New("app: no persistence configured")

// Service provides one-shot operations on the saved entries for the CLI and
// the MCP server. Every call reads the collection fresh from the store, so it
// may run alongside an editor session in another process.
type Service struct {
	Store    store.KV
	Exporter export.Exporter
	Logger   logging.Logger
	// Defaults seed preferences when the store holds none.
	Defaults entry.Prefs
	Now      func() time.Time
	NewID    func() string
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return entry.NewID()
}

func (s *Service) logger() logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Nop()
}

func (s *Service) defaults() entry.Prefs {
	return s.Defaults.Normalize(entry.DefaultPrefs())
}

// load reads the collection. Malformed data reads as empty with a warning,
// unless strict is set, in which case the error is returned so a write does
// not replace data that could not be parsed.
func (s *Service) load(ctx context.Context, strict bool) (*collection.Collection, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	c, err := store.LoadEntries(s.Store, s.defaults())
	if err != nil {
		if strict {
			return nil, err
		}
		s.logger().Warn(ctx, "entries unreadable, treating as empty", "err", err)
	}
	return c, nil
}

// Prefs returns the stored preferences, falling back to the defaults.
func (s *Service) Prefs(ctx context.Context) (entry.Prefs, error) {
	if s.Store == nil {
		return entry.Prefs{}, errNoStore
	}
	p, err := store.LoadPrefs(s.Store, s.defaults())
	if err != nil {
		s.logger().Warn(ctx, "preferences unreadable", "err", err)
	}
	return p, nil
}

// Entries lists every entry, most recently updated first.
func (s *Service) Entries(ctx context.Context) ([]entry.Entry, error) {
	c, err := s.load(ctx, false)
	if err != nil {
		return nil, err
	}
	return c.Entries(), nil
}

// Search matches query against content and title, ignoring case.
func (s *Service) Search(ctx context.Context, query string) ([]entry.Entry, error) {
	c, err := s.load(ctx, false)
	if err != nil {
		return nil, err
	}
	return c.Search(query), nil
}

// Get resolves id, or a unique prefix of one.
func (s *Service) Get(ctx context.Context, id string) (entry.Entry, error) {
	c, err := s.load(ctx, false)
	if err != nil {
		return entry.Entry{}, err
	}
	return resolve(c, id)
}

func resolve(c *collection.Collection, id string) (entry.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entry.Entry{}, ErrNotFound
	}
	if e, ok := c.Get(id); ok {
		return e, nil
	}
	var found []entry.Entry
	for _, e := range c.Entries() {
		if strings.HasPrefix(e.ID, id) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return entry.Entry{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return entry.Entry{}, fmt.Errorf("app: id prefix %q is ambiguous (%d matches)", id, len(found))
	}
}

// Create stores a new entry with the stored preferences.
func (s *Service) Create(ctx context.Context, title, content string) (entry.Entry, error) {
	c, err := s.load(ctx, true)
	if err != nil {
		return entry.Entry{}, err
	}
	prefs, err := s.Prefs(ctx)
	if err != nil {
		return entry.Entry{}, err
	}
	e := entry.New(s.newID(), prefs, s.now())
	e.Title = entry.NormalizeTitle(title)
	e.Content = content
	c.Upsert(e)
	if err := store.SaveEntries(s.Store, c); err != nil {
		return entry.Entry{}, err
	}
	s.logger().Info(ctx, "entry created", "id", e.ID)
	return e, nil
}

// Rename sets the title of id. Blank titles become "Untitled".
func (s *Service) Rename(ctx context.Context, id, title string) (entry.Entry, error) {
	c, err := s.load(ctx, true)
	if err != nil {
		return entry.Entry{}, err
	}
	e, err := resolve(c, id)
	if err != nil {
		return entry.Entry{}, err
	}
	e.Title = entry.NormalizeTitle(title)
	c.Upsert(e)
	if err := store.SaveEntries(s.Store, c); err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

// Delete removes id permanently.
func (s *Service) Delete(ctx context.Context, id string) (entry.Entry, error) {
	c, err := s.load(ctx, true)
	if err != nil {
		return entry.Entry{}, err
	}
	e, err := resolve(c, id)
	if err != nil {
		return entry.Entry{}, err
	}
	c.Delete(e.ID)
	if err := store.SaveEntries(s.Store, c); err != nil {
		return entry.Entry{}, err
	}
	s.logger().Info(ctx, "entry deleted", "id", e.ID)
	return e, nil
}

// Clear removes every entry and the draft buffer. It returns how many
// entries were removed.
func (s *Service) Clear(ctx context.Context) (int, error) {
	c, err := s.load(ctx, false)
	if err != nil {
		return 0, err
	}
	n := c.Len()
	if err := store.SaveEntries(s.Store, collection.New()); err != nil {
		return 0, err
	}
	if err := store.SaveDraft(s.Store, ""); err != nil {
		return 0, err
	}
	s.logger().Info(ctx, "entries cleared", "count", n)
	return n, nil
}

// Export writes the content of id to path.
func (s *Service) Export(ctx context.Context, id, path string) (entry.Entry, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return entry.Entry{}, err
	}
	exp := s.Exporter
	if exp == nil {
		exp = export.File{}
	}
	if err := exp.Export(ctx, path, e.Content); err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

// Import stores each document as a new entry created at its modification
// time. Blank documents are skipped.
func (s *Service) Import(ctx context.Context, docs []export.Document) ([]entry.Entry, error) {
	c, err := s.load(ctx, true)
	if err != nil {
		return nil, err
	}
	prefs, err := s.Prefs(ctx)
	if err != nil {
		return nil, err
	}
	var added []entry.Entry
	for _, d := range docs {
		if strings.TrimSpace(d.Content) == "" {
			s.logger().Debug(ctx, "skipping blank document", "path", d.Path)
			continue
		}
		created := d.ModTime
		if created.IsZero() {
			created = s.now()
		}
		e := entry.New(s.newID(), prefs, created)
		e.Title = entry.NormalizeTitle(d.Title)
		e.Content = d.Content
		c.Upsert(e)
		added = append(added, e)
	}
	if len(added) == 0 {
		return nil, nil
	}
	if err := store.SaveEntries(s.Store, c); err != nil {
		return nil, err
	}
	s.logger().Info(ctx, "entries imported", "count", len(added))
	return added, nil
}
