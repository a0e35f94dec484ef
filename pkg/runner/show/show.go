package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/printers"
)

// Show prints one entry. Raw prints only its content, byte for byte.
type Show struct {
	Service *app.Service
	ID      string
	Raw     bool
	ShowID  bool
	Output  printers.Format
	Out     io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not show, no persistence")
	}
	e, err := s.Service.Get(ctx, s.ID)
	if err != nil {
		return err
	}

	switch {
	case s.Raw:
		_, err := fmt.Fprint(s.out(), e.Content)
		return err
	case s.Output == printers.FormatJSON || s.Output == printers.FormatYAML:
		p := printers.Structured{Format: s.Output, Out: s.Out}
		return p.Print(e)
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID, Out: s.Out}
	pp.Entry(e)
	return nil
}

func (s *Show) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return color.Output
}
