package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
	fwexport "tableflip.dev/freewrite/pkg/export"
)

// Export writes the content of an entry to Path. An empty Path uses the
// suggested file name in the working directory.
type Export struct {
	Service *app.Service
	ID      string
	Path    string
	Now     func() time.Time
	Out     io.Writer
}

func (x *Export) Do(ctx context.Context) error {
	if x.Service == nil {
		return errors.New("can not export, no persistence")
	}
	path := x.Path
	if path == "" {
		e, err := x.Service.Get(ctx, x.ID)
		if err != nil {
			return err
		}
		now := time.Now
		if x.Now != nil {
			now = x.Now
		}
		path = fwexport.DefaultFileName(e.Title, now())
	}
	path, err := fwexport.ExpandPath(path)
	if err != nil {
		return err
	}
	e, err := x.Service.Export(ctx, x.ID, path)
	if err != nil {
		return err
	}
	out := x.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "saved %s to %s\n", color.New(color.Bold).Sprint(e.Title), path)
	return nil
}
