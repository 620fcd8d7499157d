// internal/loop/clock.go
package loop

import "time"

// Clock is the loop's time source. The game uses SystemClock; tests drive a
// ManualClock so frame timing is deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is an externally advanced clock. The loop is single-threaded
// and cooperative, so no locking is needed.
type ManualClock struct {
	now time.Time
}

// NewManualClock starts a manual clock at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Set jumps the clock to an absolute instant.
func (c *ManualClock) Set(t time.Time) { c.now = t }
