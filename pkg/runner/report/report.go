package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/printers"
	"tableflip.dev/freewrite/pkg/timeutil"
)

// Report summarises the writing done within Window, such as "3d" or "1w2d".
type Report struct {
	Service *app.Service
	Window  string
	// Calendar adds a month view marking the days something was written.
	Calendar bool
	ShowID   bool
	Output   printers.Format
	Now      func() time.Time
	Out      io.Writer
}

func (r *Report) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not report, no persistence")
	}
	window := r.Window
	if window == "" {
		window = timeutil.DefaultWindow
	}
	duration, label, err := timeutil.ParseWindow(window)
	if err != nil {
		return err
	}
	until := time.Now()
	if r.Now != nil {
		until = r.Now()
	}
	result, err := r.Service.Report(ctx, until.Add(-duration), until)
	if err != nil {
		return err
	}

	switch r.Output {
	case printers.FormatJSON, printers.FormatYAML:
		p := printers.Structured{Format: r.Output, Out: r.Out}
		return p.Print(result)
	}

	out := r.out()
	f := color.New(color.Faint)
	_, _ = fmt.Fprintf(out, "Report · last %s ", label)
	_, _ = f.Fprintf(out, "(%s → %s)\n\n", result.Since.Local().Format("2006-01-02 15:04"), result.Until.Local().Format("2006-01-02 15:04"))

	pp := printers.PrettyPrint{ShowID: r.ShowID, Out: r.Out}
	if result.Total == 0 {
		_, _ = f.Fprint(out, "  Nothing written in this window.\n\n")
	}
	var written []entry.Entry
	for _, section := range result.Sections {
		pp.TitleWithCount(section.Day.Format("Monday, January 2"), len(section.Entries))
		entries := make([]entry.Entry, 0, len(section.Entries))
		for _, item := range section.Entries {
			entries = append(entries, item.Entry)
		}
		pp.Entries(entries...)
		written = append(written, entries...)
	}
	if result.Total > 0 {
		_, _ = fmt.Fprintf(out, "%d %s, %d words\n\n", result.Total, plural(result.Total, "entry", "entries"), result.Words)
	}
	if r.Calendar {
		pp.Calendar(until, written...)
	}
	return nil
}

func (r *Report) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return color.Output
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
