package main

import (
	"fmt"
	"time"

	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/store"
)

func sampleEntries() []entry.Entry {
	now := time.Now()
	mk := func(id, title, content string, age time.Duration) entry.Entry {
		e := entry.New(id, entry.DefaultPrefs(), now.Add(-age))
		e.Title = title
		e.Content = content
		return e
	}
	return []entry.Entry{
		mk("1", "Morning pages", "Woke early. The light on the desk was the colour of weak tea and I wrote until it changed.", 30*time.Minute),
		mk("2", entry.DefaultTitle, "A list of things I keep meaning to say to my sister.", 5*time.Hour),
		mk("3", "Garden", "Tomatoes are finally turning. The basil bolted again, which is the third summer in a row.", 26*time.Hour),
		mk("4", "A very long title that should be truncated by the history panel long before it reaches the edge", "Short body.", 72*time.Hour),
		mk("5", "Blank-ish", "   ", 200*time.Hour),
	}
}

// loadEntries returns the saved entries from the real store, or the samples.
func loadEntries(opts options) ([]entry.Entry, error) {
	if !opts.real {
		return sampleEntries(), nil
	}
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(settings)
	if err != nil {
		return nil, fmt.Errorf("load freewrite store: %w", err)
	}
	c, err := store.LoadEntries(p, settings.Prefs)
	if err != nil {
		return nil, err
	}
	return c.Entries(), nil
}
