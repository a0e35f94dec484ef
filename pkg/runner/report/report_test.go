package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/printers"
	"tableflip.dev/freewrite/pkg/store"
)

func init() {
	color.NoColor = true
}

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

func seeded(t *testing.T) *app.Service {
	t.Helper()
	clock := now.Add(-72 * time.Hour)
	n := 0
	svc := &app.Service{
		Store: store.NewMemory(),
		Now: func() time.Time {
			clock = clock.Add(time.Hour)
			return clock
		},
		NewID: func() string {
			n++
			return fmt.Sprintf("entry-%d", n)
		},
	}
	for _, content := range []string{"one two three", "four five"} {
		if _, err := svc.Create(context.Background(), "", content); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	return svc
}

func TestReportPretty(t *testing.T) {
	var out bytes.Buffer
	r := &Report{Service: seeded(t), Window: "1w", Calendar: true, Now: func() time.Time { return now }, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("report: %v", err)
	}
	got := out.String()
	for _, want := range []string{"last 1w", "2 entries, 5 words", "March"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestReportEmptyWindow(t *testing.T) {
	var out bytes.Buffer
	r := &Report{Service: seeded(t), Window: "1h", Now: func() time.Time { return now }, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing written") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestReportJSON(t *testing.T) {
	var out bytes.Buffer
	r := &Report{Service: seeded(t), Output: printers.FormatJSON, Now: func() time.Time { return now }, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out.String(), `"Words": 5`) {
		t.Fatalf("unexpected json:\n%s", out.String())
	}
}

func TestReportInvalidWindow(t *testing.T) {
	r := &Report{Service: seeded(t), Window: "soon", Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid window")
	}
}
