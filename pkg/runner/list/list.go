package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/printers"
)

// List prints the saved entries, most recently updated first.
type List struct {
	Service *app.Service
	// Limit caps the number of entries printed; zero prints all.
	Limit  int
	ShowID bool
	Output printers.Format
	Out    io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list, no persistence")
	}
	entries, err := l.Service.Entries(ctx)
	if err != nil {
		return err
	}
	total := len(entries)
	if l.Limit > 0 && len(entries) > l.Limit {
		entries = entries[:l.Limit]
	}

	switch l.Output {
	case printers.FormatJSON, printers.FormatYAML:
		s := printers.Structured{Format: l.Output, Out: l.Out}
		return s.Print(entries)
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID, Out: l.Out}
	pp.TitleWithCount("Entries", total)
	pp.Entries(entries...)
	return nil
}
