package entry

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle labels entries the user never named.
const DefaultTitle = "Untitled"

// Entry is one saved writing session.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Title     string    `json:"title" yaml:"title"`
	CreatedAt Timestamp `json:"createdAt" yaml:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt" yaml:"updatedAt"`
	Font      Font      `json:"font" yaml:"font"`
	FontSize  string    `json:"fontSize" yaml:"fontSize"`
	Theme     Theme     `json:"theme" yaml:"theme"`
}

// NewID returns a time-ordered unique identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New builds an empty entry created at now with the given presentation.
func New(id string, prefs Prefs, now time.Time) Entry {
	ts := Stamp(now)
	e := Entry{
		ID:        id,
		Title:     DefaultTitle,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	e.ApplyPrefs(prefs)
	return e
}

// Prefs returns the presentation snapshot stored on the entry.
func (e Entry) Prefs() Prefs {
	return Prefs{Font: e.Font, FontSize: e.FontSize, Theme: e.Theme}
}

// ApplyPrefs snapshots p onto the entry.
func (e *Entry) ApplyPrefs(p Prefs) {
	e.Font = p.Font.Resolve()
	e.FontSize = p.FontSize
	e.Theme = p.Theme
}

// Touch refreshes UpdatedAt, never letting it fall behind CreatedAt.
func (e *Entry) Touch(now time.Time) {
	ts := Stamp(now)
	if ts.Before(e.CreatedAt.Time) {
		ts = e.CreatedAt
	}
	e.UpdatedAt = ts
}

// Normalize repairs fields of an entry read from storage so the collection
// invariants hold: a title, valid prefs and UpdatedAt >= CreatedAt.
func (e *Entry) Normalize(fallback Prefs) {
	if strings.TrimSpace(e.Title) == "" {
		e.Title = DefaultTitle
	}
	p := e.Prefs().Normalize(fallback)
	e.Font, e.FontSize, e.Theme = p.Font, p.FontSize, p.Theme
	if e.CreatedAt.IsZero() {
		e.CreatedAt = e.UpdatedAt
	}
	if e.UpdatedAt.Before(e.CreatedAt.Time) {
		e.UpdatedAt = e.CreatedAt
	}
}

// NormalizeTitle trims title and substitutes DefaultTitle for blanks.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

// Matches reports whether query occurs, ignoring case, in the content or title.
func (e Entry) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Content), q) ||
		strings.Contains(strings.ToLower(e.Title), q)
}
