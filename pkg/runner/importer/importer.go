package importer

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/export"
	"tableflip.dev/freewrite/pkg/printers"
)

// Import stores every text file matched by Patterns as a new entry.
type Import struct {
	Service  *app.Service
	Patterns []string
	ShowID   bool
	Out      io.Writer
}

func (i *Import) Do(ctx context.Context) error {
	if i.Service == nil {
		return errors.New("can not import, no persistence")
	}
	if len(i.Patterns) == 0 {
		return errors.New("no files to import")
	}
	docs, err := export.Collect(i.Patterns)
	if err != nil {
		return err
	}
	added, err := i.Service.Import(ctx, docs)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: i.ShowID, Out: i.Out}
	pp.TitleWithCount("Imported", len(added))
	pp.Entries(added...)
	return nil
}
