package timer

import (
	"context"
	"testing"
	"time"
)

func TestCountdownCompletesExactlyOnce(t *testing.T) {
	c := New()
	c.Start(5)
	completions := 0
	for i := 0; i < 5*60+10; i++ {
		if c.Tick() {
			completions++
		}
	}
	if completions != 1 {
		t.Fatalf("expected one completion, got %d", completions)
	}
	if !c.Done() || c.Running() || c.Remaining() != 0 {
		t.Fatalf("unexpected state after completion: done=%v running=%v remaining=%v", c.Done(), c.Running(), c.Remaining())
	}
}

func TestPauseHaltsTicks(t *testing.T) {
	c := New()
	c.Start(1)
	c.Tick()
	c.Pause()
	before := c.Remaining()
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	if c.Remaining() != before {
		t.Fatalf("paused countdown moved from %v to %v", before, c.Remaining())
	}
	if !c.Resume() {
		t.Fatal("resume should succeed with time left")
	}
	c.Tick()
	if c.Remaining() != before-time.Second {
		t.Fatalf("remaining = %v", c.Remaining())
	}
}

func TestResetAndEpoch(t *testing.T) {
	c := New()
	c.Start(15)
	e := c.Epoch()
	c.Reset()
	if c.Epoch() == e {
		t.Fatal("reset should advance the epoch")
	}
	if c.Active() || c.Resume() {
		t.Fatal("reset countdown should be inactive")
	}
	if c.Start(0) {
		t.Fatal("zero-minute start should be rejected")
	}
}

func TestFormat(t *testing.T) {
	tests := map[time.Duration]string{
		0:                              "0:00",
		5 * time.Second:                "0:05",
		25 * time.Minute:               "25:00",
		4*time.Minute + 59*time.Second: "4:59",
		-time.Second:                   "0:00",
	}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Errorf("Format(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c := New()
	c.Start(30)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, c, nil, func() { t.Fatal("should not complete") }); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
