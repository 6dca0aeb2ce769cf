// Package playbacktest provides a manually advanced playback.Clock for
// deterministic tests of timer-driven code.
package playbacktest

import (
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/lvwalk/playback"
)

// Clock is a fake playback.Clock. Time only moves when Advance is called, and
// due callbacks run synchronously on the caller's goroutine.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*timer

	// LeakyStop makes Stop report success without preventing the callback,
	// imitating a timer that fired concurrently with its cancellation.
	LeakyStop bool
}

type timer struct {
	clk     *Clock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

// NewClock returns a Clock set to a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// AfterFunc implements playback.Clock.
func (c *Clock) AfterFunc(d time.Duration, f func()) playback.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{clk: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)

	return t
}

// Now implements playback.Clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Stop implements playback.Timer.
func (t *timer) Stop() bool {
	t.clk.mu.Lock()
	defer t.clk.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	if !t.clk.LeakyStop {
		t.stopped = true
	}

	return true
}

// Advance moves time forward by d, firing due callbacks in deadline order.
// Callbacks scheduled while advancing fire too if they fall due within d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due []*timer
		for _, t := range c.timers {
			if !t.fired && !t.stopped && !t.at.After(target) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()
			return
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
		next := due[0]
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of armed, unfired timers.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}

	return n
}
