// Package mcp provides the Model Context Protocol server integration for
// freewrite.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/draft"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/timeutil"
)

// Service adapts app.Service to transport-friendly results for the MCP
// server.
type Service struct {
	App *app.Service
	// Now bounds report windows; defaults to time.Now.
	Now func() time.Time
}

// ErrEntryNotFound is returned when an entry cannot be located.
var ErrEntryNotFound = app.ErrNotFound

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	Preview     string `json:"preview"`
	Words       int    `json:"words"`
	CreatedISO  string `json:"created"`
	UpdatedISO  string `json:"updated"`
	CreatedUnix int64  `json:"createdUnix"`
	UpdatedUnix int64  `json:"updatedUnix"`
	Font        string `json:"font"`
	FontSize    string `json:"fontSize"`
	Theme       string `json:"theme"`
}

// ReportDTO summarises writing over a window.
type ReportDTO struct {
	Window  string      `json:"window"`
	Since   string      `json:"since"`
	Until   string      `json:"until"`
	Entries int         `json:"entries"`
	Words   int         `json:"words"`
	Days    []ReportDay `json:"days"`
}

type ReportDay struct {
	Day     string `json:"day"`
	Entries int    `json:"entries"`
	Words   int    `json:"words"`
}

// NewService builds a service wrapper around svc.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

func (s *Service) app() (*app.Service, error) {
	if s.App == nil {
		return nil, errors.New("freewrite service is not configured")
	}
	return s.App, nil
}

// ListEntries returns up to limit entries, most recently updated first,
// without their full content.
func (s *Service) ListEntries(ctx context.Context, limit int) ([]EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	all, err := a.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(clip(all, limit), false), nil
}

// SearchEntries matches query against content and titles, ignoring case.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return []EntryDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	found, err := a.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toDTOs(clip(found, limit), false), nil
}

// EntryByID returns one entry with its full content.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}
	e, err := a.Get(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	dto := toDTO(e, true)
	return &dto, nil
}

// CreateEntry stores a new entry.
func (s *Service) CreateEntry(ctx context.Context, title, content string) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("content is required")
	}
	e, err := a.Create(ctx, title, content)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, true)
	return &dto, nil
}

// RenameEntry changes an entry title.
func (s *Service) RenameEntry(ctx context.Context, id, title string) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	e, err := a.Rename(ctx, id, title)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	dto := toDTO(e, false)
	return &dto, nil
}

// DeleteEntry removes an entry and returns what was removed.
func (s *Service) DeleteEntry(ctx context.Context, id string) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	e, err := a.Delete(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	dto := toDTO(e, false)
	return &dto, nil
}

// Report summarises entries updated within window ("1w", "3d", ...).
func (s *Service) Report(ctx context.Context, window string) (*ReportDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	dur, label, err := timeutil.ParseWindow(window)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	res, err := a.Report(ctx, now.Add(-dur), now)
	if err != nil {
		return nil, err
	}
	out := &ReportDTO{
		Window:  label,
		Since:   formatTime(res.Since),
		Until:   formatTime(res.Until),
		Entries: res.Total,
		Words:   res.Words,
		Days:    make([]ReportDay, 0, len(res.Sections)),
	}
	for _, sec := range res.Sections {
		out.Days = append(out.Days, ReportDay{
			Day:     sec.Day.Format("2006-01-02"),
			Entries: len(sec.Entries),
			Words:   sec.Words,
		})
	}
	return out, nil
}

func wrapNotFound(err error, id string) error {
	if errors.Is(err, app.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return err
}

func clip(entries []entry.Entry, limit int) []entry.Entry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func toDTOs(entries []entry.Entry, withContent bool) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e, withContent))
	}
	return out
}

func toDTO(e entry.Entry, withContent bool) EntryDTO {
	dto := EntryDTO{
		ID:          e.ID,
		Title:       e.Title,
		Preview:     entry.OneLine(e.Preview()),
		Words:       draft.WordCount(e.Content),
		CreatedISO:  formatTime(e.CreatedAt.Time),
		UpdatedISO:  formatTime(e.UpdatedAt.Time),
		CreatedUnix: e.CreatedAt.Unix(),
		UpdatedUnix: e.UpdatedAt.Unix(),
		Font:        string(e.Font),
		FontSize:    e.FontSize,
		Theme:       string(e.Theme),
	}
	if withContent {
		dto.Content = e.Content
	}
	return dto
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
