package main

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/export"
	"tableflip.dev/freewrite/pkg/store"
)

// demo seeds the configured store with a week of sample entries.
func main() {
	settings, err := store.LoadConfig()
	if err != nil {
		panic(err)
	}
	p, err := store.Load(settings)
	if err != nil {
		panic(err)
	}

	now := time.Now()
	docs := []export.Document{
		{Title: "Morning pages", Content: "The kettle clicked off and I still had nothing. Then a sentence, then another.", ModTime: now.Add(-2 * time.Hour)},
		{Title: "Garden", Content: "Tomatoes turning. Basil bolted again.", ModTime: now.Add(-26 * time.Hour)},
		{Title: "Letter draft", Content: "Dear A,\n\nIt has been too long. I keep starting this and stopping.", ModTime: now.Add(-3 * 24 * time.Hour)},
		{Title: "", Content: "untitled thought about trains and the people who wait for them", ModTime: now.Add(-6 * 24 * time.Hour)},
	}

	svc := &app.Service{Store: p, Defaults: settings.Prefs}
	added, err := svc.Import(context.Background(), docs)
	if err != nil {
		panic(err)
	}
	for _, e := range added {
		fmt.Printf("%s  %s\n", e.ID, e.Title)
	}
}
