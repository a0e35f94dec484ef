// Package debounce runs an action once activity has been quiet for a delay.
package debounce

import (
	"sync"
	"time"
)

// Stopper is the part of *time.Timer a Trailing needs.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Stopper

func realAfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

type Option func(*Trailing)

// WithAfterFunc replaces the timer source, usually with a Manual in tests.
func WithAfterFunc(after AfterFunc) Option {
	return func(t *Trailing) {
		if after != nil {
			t.after = after
		}
	}
}

// Trailing calls fn once, delay after the most recent Trigger. Every Trigger
// restarts the wait, so a burst of triggers produces a single call.
type Trailing struct {
	delay time.Duration
	fn    func()
	after AfterFunc

	mu      sync.Mutex
	timer   Stopper
	gen     uint64
	pending bool
	stopped bool
}

func New(delay time.Duration, fn func(), opts ...Option) *Trailing {
	t := &Trailing{
		delay: delay,
		fn:    fn,
		after: realAfterFunc,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Trailing) Trigger() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.gen++
	t.pending = true
	if t.timer != nil {
		t.timer.Stop()
	}
	gen := t.gen
	t.timer = t.after(t.delay, func() { t.fire(gen) })
}

func (t *Trailing) fire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || !t.pending || t.stopped {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.timer = nil
	t.mu.Unlock()
	t.fn()
}

// Pending reports whether a call is scheduled.
func (t *Trailing) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Flush runs a scheduled call now instead of waiting. It reports whether
// anything was pending.
func (t *Trailing) Flush() bool {
	if !t.cancel() {
		return false
	}
	t.fn()
	return true
}

// Cancel drops a scheduled call without running it.
func (t *Trailing) Cancel() {
	t.cancel()
}

func (t *Trailing) cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.pending
	t.pending = false
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	return was
}

// Stop cancels any scheduled call and ignores later triggers.
func (t *Trailing) Stop() {
	t.cancel()
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}
