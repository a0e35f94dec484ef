package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in    string
		want  time.Duration
		label string
	}{
		{"", week, "1w"},
		{"25m", 25 * time.Minute, "25m"},
		{"1w2d6h30m", week + 2*day + 6*time.Hour + 30*time.Minute, "1w2d6h30m"},
		{" 3 days ", 3 * day, "3d"},
		{"90min", 90 * time.Minute, "1h30m"},
	}
	for _, tt := range tests {
		got, label, err := ParseWindow(tt.in)
		if err != nil {
			t.Fatalf("ParseWindow(%q): %v", tt.in, err)
		}
		if got != tt.want || label != tt.label {
			t.Errorf("ParseWindow(%q) = %v %q, want %v %q", tt.in, got, label, tt.want, tt.label)
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "5", "3y", "0m", "-1d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Errorf("ParseWindow(%q): expected error", in)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	if got := FormatWindow(0); got != "0s" {
		t.Fatalf("got %q", got)
	}
	if got := FormatWindow(500 * time.Millisecond); got != "0s" {
		t.Fatalf("got %q", got)
	}
	if got := FormatWindow(day + time.Second); got != "1d1s" {
		t.Fatalf("got %q", got)
	}
}
