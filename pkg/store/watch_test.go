package store

import (
	"context"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Set(KeyEntries, "[]"); err != nil {
		t.Fatalf("set entries: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventKeyChanged {
				if evt.Key != KeyEntries {
					t.Fatalf("expected key %q, got %q", KeyEntries, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestPersistenceWatchClosesOnCancel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Type: EventKeyChanged, Key: KeyContent}, send)
	}

	select {
	case ev := <-got:
		if ev.Key != KeyContent {
			t.Fatalf("unexpected key %q", ev.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single coalesced event, got extra %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}
