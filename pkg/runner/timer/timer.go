package timer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	countdown "tableflip.dev/freewrite/pkg/timer"
)

// Timer runs a focus countdown in the terminal, redrawing the remaining time
// on one line every second.
type Timer struct {
	Minutes int
	Out     io.Writer
}

func (t *Timer) Do(ctx context.Context) error {
	c := countdown.New()
	if !c.Start(t.Minutes) {
		return fmt.Errorf("invalid timer length %d minutes", t.Minutes)
	}
	out := t.Out
	if out == nil {
		out = color.Output
	}
	b := color.New(color.Bold)

	_, _ = b.Fprintf(out, "\r%s ", c.Format())
	err := countdown.Run(ctx, c,
		func(time.Duration) {
			_, _ = b.Fprintf(out, "\r%s ", c.Format())
		},
		func() {
			_, _ = fmt.Fprint(out, "\a")
			_, _ = color.New(color.FgHiYellow).Fprint(out, "\rTime's up!\n")
		},
	)
	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(out)
		return nil
	}
	return err
}
