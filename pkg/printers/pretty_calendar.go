package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, with the days something was
// written in bold.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...entry.Entry) {
	pp.PrintMonth(time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local), entries...)
}

// CalendarYear prints every month of the year containing on.
func (pp *PrettyPrint) CalendarYear(on time.Time, entries ...entry.Entry) {
	then := time.Date(on.Year(), 1, 1, 1, 0, 0, 0, time.Local)
	for i := 0; i < 12; i++ {
		pp.PrintMonth(then, entries...)
		then = NextMonth(then)
	}
}

func (pp *PrettyPrint) PrintMonth(then time.Time, entries ...entry.Entry) {
	count := make([]int, DaysIn(then))
	for _, e := range entries {
		for _, ts := range []time.Time{e.CreatedAt.Time, e.UpdatedAt.Time} {
			local := ts.Local()
			if local.Year() == then.Year() && local.Month() == then.Month() {
				count[local.Day()-1]++
			}
		}
	}
	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	w := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(w, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(w, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
