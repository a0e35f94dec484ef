package clear

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/runner/remove"
)

// Clear deletes every entry and the draft buffer, after confirmation unless
// Yes is set.
type Clear struct {
	Service *app.Service
	Yes     bool
	Confirm func(label string) (bool, error)
	Out     io.Writer
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not clear, no persistence")
	}
	if !c.Yes {
		ok := false
		if c.Confirm != nil {
			var err error
			if ok, err = c.Confirm("Delete every entry"); err != nil {
				return err
			}
		}
		if !ok {
			return remove.ErrAborted
		}
	}
	n, err := c.Service.Clear(ctx)
	if err != nil {
		return err
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "deleted %d %s\n", n, plural(n, "entry", "entries"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
