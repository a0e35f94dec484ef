package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/freewrite/pkg/draft"
	"tableflip.dev/freewrite/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints one row per entry: date, title, word count and preview.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, e := range entries {
		row := []interface{}{
			f.Sprint(entry.FormatDate(e.UpdatedAt.Time)),
			b.Sprint(e.Title),
			f.Sprintf("%dw", draft.WordCount(e.Content)),
			entry.OneLine(e.Preview()),
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints a header and the full content of e.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	h := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)

	_, _ = h.Fprintln(pp.out(), e.Title)
	meta := []string{
		"created " + entry.FormatDate(e.CreatedAt.Time),
		"updated " + entry.FormatDate(e.UpdatedAt.Time),
		fmt.Sprintf("%d words", draft.WordCount(e.Content)),
		fmt.Sprintf("%s %spx %s", e.Font.Label(), e.FontSize, e.Theme),
	}
	if pp.ShowID {
		meta = append([]string{e.ID}, meta...)
	}
	_, _ = f.Fprintln(pp.out(), strings.Join(meta, " · "))
	pp.NewLine()
	_, _ = fmt.Fprintln(pp.out(), e.Content)
}
