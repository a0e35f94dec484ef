// Package timer is the freewrite countdown: a fixed number of minutes ticked
// down one second at a time.
package timer

import (
	"context"
	"fmt"
	"time"
)

// Presets are the quick-start lengths, in minutes.
var Presets = []int{5, 15, 25, 30}

// Countdown is not safe for concurrent use; one goroutine drives it.
type Countdown struct {
	total     time.Duration
	remaining time.Duration
	running   bool
	done      bool
	// epoch changes whenever the countdown is restarted or reset so that a
	// driver can discard ticks scheduled for an earlier run.
	epoch int
}

func New() *Countdown {
	return &Countdown{}
}

// Start begins a fresh countdown of the given length. Non-positive lengths
// are ignored.
func (c *Countdown) Start(minutes int) bool {
	if minutes <= 0 {
		return false
	}
	c.total = time.Duration(minutes) * time.Minute
	c.remaining = c.total
	c.running = true
	c.done = false
	c.epoch++
	return true
}

func (c *Countdown) Pause() {
	c.running = false
}

func (c *Countdown) Resume() bool {
	if c.remaining <= 0 || c.done {
		return false
	}
	c.running = true
	return true
}

// Reset stops the countdown and clears it.
func (c *Countdown) Reset() {
	c.total = 0
	c.remaining = 0
	c.running = false
	c.done = false
	c.epoch++
}

// Tick advances one second if running. It returns true only on the tick that
// reaches zero.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}
	c.remaining -= time.Second
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.running = false
	c.done = true
	return true
}

func (c *Countdown) Remaining() time.Duration { return c.remaining }

func (c *Countdown) Running() bool { return c.running }

// Active reports whether a countdown is in progress, running or paused.
func (c *Countdown) Active() bool { return c.remaining > 0 }

func (c *Countdown) Done() bool { return c.done }

func (c *Countdown) Epoch() int { return c.epoch }

// Format renders the remaining time as m:ss.
func (c *Countdown) Format() string {
	return Format(c.remaining)
}

func Format(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Run drives c with a one-second ticker until it completes or ctx ends.
// onTick sees the remaining time after every tick; onDone runs once on
// completion.
func Run(ctx context.Context, c *Countdown, onTick func(time.Duration), onDone func()) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			finished := c.Tick()
			if onTick != nil {
				onTick(c.Remaining())
			}
			if finished {
				if onDone != nil {
					onDone()
				}
				return nil
			}
			if !c.Running() {
				return nil
			}
		}
	}
}
