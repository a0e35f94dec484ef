package app

import (
	"context"
	"sort"
	"time"

	"tableflip.dev/freewrite/pkg/draft"
	"tableflip.dev/freewrite/pkg/entry"
)

// ReportItem is an entry written in the report window and its word count.
type ReportItem struct {
	Entry entry.Entry
	Words int
}

// ReportSection groups the entries last updated on one local calendar day.
type ReportSection struct {
	Day     time.Time
	Entries []ReportItem
	Words   int
}

// ReportResult summarises writing activity for a time window.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	Total    int
	Words    int
}

// Report returns entries updated between the bounds, grouped by day, newest
// day first.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	all, err := s.Entries(ctx)
	if err != nil {
		return ReportResult{}, err
	}

	grouped := make(map[time.Time]*ReportSection)
	result := ReportResult{Since: since, Until: until}
	for _, e := range all {
		updated := e.UpdatedAt.Time
		if updated.Before(since) || updated.After(until) {
			continue
		}
		day := startOfDay(updated.Local())
		section, ok := grouped[day]
		if !ok {
			section = &ReportSection{Day: day}
			grouped[day] = section
		}
		words := draft.WordCount(e.Content)
		section.Entries = append(section.Entries, ReportItem{Entry: e, Words: words})
		section.Words += words
		result.Total++
		result.Words += words
	}

	days := make([]time.Time, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	for _, day := range days {
		result.Sections = append(result.Sections, *grouped[day])
	}
	return result, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
