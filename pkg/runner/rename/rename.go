package rename

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
)

// Rename sets the title of an entry. A blank title resets it to "Untitled".
type Rename struct {
	Service *app.Service
	ID      string
	Title   string
	Out     io.Writer
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not rename, no persistence")
	}
	e, err := r.Service.Rename(ctx, r.ID, r.Title)
	if err != nil {
		return err
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "renamed %s to %s\n", e.ID, color.New(color.Bold).Sprint(e.Title))
	return nil
}
