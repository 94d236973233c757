// Package clock provides frame timing for the engine loop: delta time
// between consecutive frames and elapsed time since startup.
package clock

import "time"

// Clock measures per-frame delta time and total elapsed time. Not safe for
// concurrent use; Tick is called once per frame on the event loop thread.
type Clock struct {
	start     time.Time
	lastFrame time.Time
	now       func() time.Time
}

// New creates a clock starting at the current time.
//
// Returns:
//   - *Clock: the running clock
func New() *Clock {
	return newWithNow(time.Now)
}

// newWithNow injects the time source, for tests.
func newWithNow(now func() time.Time) *Clock {
	t := now()
	return &Clock{start: t, lastFrame: t, now: now}
}

// Tick advances the clock by one frame and returns the time elapsed since
// the previous Tick (or since New for the first frame), in seconds.
//
// Returns:
//   - float32: frame delta time in seconds
func (c *Clock) Tick() float32 {
	t := c.now()
	dt := t.Sub(c.lastFrame)
	c.lastFrame = t
	return float32(dt.Seconds())
}

// SinceStart returns the time elapsed since the clock was created, in
// seconds. This is the value uploaded to the shader time uniform.
//
// Returns:
//   - float32: elapsed seconds since startup
func (c *Clock) SinceStart() float32 {
	return float32(c.now().Sub(c.start).Seconds())
}

// Now returns the clock's current wall time.
func (c *Clock) Now() time.Time {
	return c.now()
}
