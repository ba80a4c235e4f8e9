package obj

import "time"

// FrameClock measures the work done in a frame against a fixed budget.
type FrameClock struct {
	budget   time.Duration
	last     time.Time
	overruns int

	now func() time.Time
}

func NewFrameClock(targetFPS int) *FrameClock {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	c := &FrameClock{
		budget: time.Second / time.Duration(targetFPS),
		now:    time.Now,
	}
	c.last = c.now()
	return c
}

func (c *FrameClock) Budget() time.Duration {
	return c.budget
}

// Restart returns the time since the previous Restart and starts a new frame.
func (c *FrameClock) Restart() time.Duration {
	now := c.now()
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}

// Elapsed returns the time since the last Restart.
func (c *FrameClock) Elapsed() time.Duration {
	return c.now().Sub(c.last)
}

// Remaining returns how long the frame may still sleep. It is zero when the
// frame used up its budget; such frames are counted as overruns.
func (c *FrameClock) Remaining(elapsed time.Duration) time.Duration {
	rem := c.budget - elapsed
	if rem <= 0 {
		c.overruns++
		return 0
	}
	return rem
}

// Overruns returns the number of frames that exceeded the budget.
func (c *FrameClock) Overruns() int {
	return c.overruns
}
