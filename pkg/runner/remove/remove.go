package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
)

// ErrAborted is returned when the user declines the confirmation.
var ErrAborted = errors.New("aborted")

// Remove permanently deletes one entry. Confirm is asked first unless Yes is
// set; a nil Confirm declines.
type Remove struct {
	Service *app.Service
	ID      string
	Yes     bool
	Confirm func(label string) (bool, error)
	Out     io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not remove, no persistence")
	}
	e, err := r.Service.Get(ctx, r.ID)
	if err != nil {
		return err
	}
	if !r.Yes {
		ok := false
		if r.Confirm != nil {
			if ok, err = r.Confirm(fmt.Sprintf("Delete %q (%s)", e.Title, e.ID)); err != nil {
				return err
			}
		}
		if !ok {
			return ErrAborted
		}
	}
	if _, err := r.Service.Delete(ctx, e.ID); err != nil {
		return err
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "deleted %s\n", e.ID)
	return nil
}
