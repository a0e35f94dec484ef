package debounce

import (
	"sync"
	"time"
)

// Manual is an AfterFunc source whose timers only fire when told to.
type Manual struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	was := !m.stopped
	m.stopped = true
	return was
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Stopper {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{delay: d, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Scheduled counts timers that are armed and not yet fired.
func (m *Manual) Scheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Fire runs every armed timer and returns how many ran.
func (m *Manual) Fire() int {
	m.mu.Lock()
	var due []*manualTimer
	for _, t := range m.timers {
		if !t.stopped {
			t.stopped = true
			due = append(due, t)
		}
	}
	m.timers = nil
	m.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}
