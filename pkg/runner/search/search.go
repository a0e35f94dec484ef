package search

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/printers"
)

// Search prints the entries whose title or content contains Query, ignoring
// case.
type Search struct {
	Service *app.Service
	Query   string
	ShowID  bool
	Output  printers.Format
	Out     io.Writer
}

func (s *Search) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not search, no persistence")
	}
	found, err := s.Service.Search(ctx, s.Query)
	if err != nil {
		return err
	}

	switch s.Output {
	case printers.FormatJSON, printers.FormatYAML:
		p := printers.Structured{Format: s.Output, Out: s.Out}
		return p.Print(found)
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID, Out: s.Out}
	pp.TitleWithCount("Matching "+s.Query, len(found))
	pp.Entries(found...)
	return nil
}
