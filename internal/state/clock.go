package state

import (
	"sync"
	"time"
)

// Clock supplies instants to the parts of the board that are not driven by
// an input event, such as the start of a recording session.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (monotonic reading included).
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a clock that only moves when told to. It exists for tests
// in this and dependent packages, which drive strokes at exact instants.
type ManualClock struct {
	now time.Time
	mu  sync.Mutex
}

// NewManualClock returns a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current instant.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new instant.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set moves the clock to t if t is later than the current instant.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.now) {
		c.now = t
	}
}
