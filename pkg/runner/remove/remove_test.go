package remove

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	svc := &app.Service{
		Store: store.NewMemory(),
		Now:   func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
		NewID: func() string { return "entry-1" },
	}
	if _, err := svc.Create(context.Background(), "Morning", "some words"); err != nil {
		t.Fatalf("create: %v", err)
	}
	return svc
}

func TestRemoveDeclined(t *testing.T) {
	svc := newService(t)
	var asked string
	r := &Remove{
		Service: svc,
		ID:      "entry-1",
		Confirm: func(label string) (bool, error) {
			asked = label
			return false, nil
		},
		Out: &bytes.Buffer{},
	}
	if err := r.Do(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if !strings.Contains(asked, "Morning") {
		t.Fatalf("confirmation should name the entry, got %q", asked)
	}
	if _, err := svc.Get(context.Background(), "entry-1"); err != nil {
		t.Fatalf("entry should survive: %v", err)
	}
}

func TestRemoveWithoutConfirmDeclines(t *testing.T) {
	r := &Remove{Service: newService(t), ID: "entry-1", Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRemoveYes(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	r := &Remove{Service: svc, ID: "entry", Yes: true, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !strings.Contains(out.String(), "deleted entry-1") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if _, err := svc.Get(context.Background(), "entry-1"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveUnknown(t *testing.T) {
	r := &Remove{Service: newService(t), ID: "nope", Yes: true}
	if err := r.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
