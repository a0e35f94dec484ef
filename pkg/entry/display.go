package entry

import (
	"strings"
	"time"
)

const (
	previewLimit = 100
	dateLayout   = "Jan 2, 2006, 03:04 PM"
)

// Preview is the first 100 characters of the content, with an ellipsis when
// anything was cut.
func (e Entry) Preview() string {
	return Truncate(e.Content, previewLimit)
}

// Truncate shortens s to n runes, appending "..." when it had to cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// OneLine collapses whitespace runs, including newlines, to single spaces.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FormatDate renders t in the local zone for listings.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}
