// Package timeutil parses the short human durations used on the command line.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultWindow is the report window used when none is given.
const DefaultWindow = "1w"

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var units = map[string]time.Duration{
	"s": time.Second, "sec": time.Second, "second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": day, "day": day, "days": day,
	"w": week, "wk": week, "wks": week, "week": week, "weeks": week,
}

// ParseWindow reads durations such as "25m", "3d" or "1w2d6h" and returns the
// total with its canonical spelling. Empty input means DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		s = DefaultWindow
	}

	var total time.Duration
	for len(s) > 0 {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		digits := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
		if digits <= 0 {
			return 0, "", fmt.Errorf("invalid duration segment %q", s)
		}
		n, err := strconv.ParseInt(s[:digits], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid duration value %q: %w", s[:digits], err)
		}
		s = strings.TrimLeftFunc(s[digits:], unicode.IsSpace)
		end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
		if end < 0 {
			end = len(s)
		}
		unit, ok := units[s[:end]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported duration unit %q", s[:end])
		}
		total += time.Duration(n) * unit
		s = s[end:]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("duration must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow spells d with w, d, h, m and s tokens, largest first.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	var b strings.Builder
	for _, u := range []struct {
		label string
		size  time.Duration
	}{{"w", week}, {"d", day}, {"h", time.Hour}, {"m", time.Minute}, {"s", time.Second}} {
		if n := d / u.size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.label)
			d -= n * u.size
		}
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
