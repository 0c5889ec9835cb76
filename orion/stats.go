package orion

import (
	"time"
)

// FrameCounter counts completed frames and reports them once per second.
type FrameCounter struct {
	// frames completed since the last reset
	Frames int

	lastReset time.Time
	current   time.Time
}

// Start resets the counter and starts a new measurement at now.
func (c *FrameCounter) Start(now time.Time) {
	c.Frames = 0
	c.lastReset = now
	c.current = now
}

// FrameDone counts one completed frame.
func (c *FrameCounter) FrameDone() {
	c.Frames += 1
}

// Tick updates the current time. If at least one second passed since
// the last reset it returns the number of frames counted in that period
// and resets the counter.
func (c *FrameCounter) Tick(now time.Time) (frames int, ok bool) {
	c.current = now

	if c.current.Sub(c.lastReset) < time.Second {
		return 0, false
	}

	frames = c.Frames

	c.Frames = 0
	c.lastReset = c.current

	return frames, true
}

// Elapsed returns the time since the last reset.
func (c *FrameCounter) Elapsed() time.Duration {
	return c.current.Sub(c.lastReset)
}
