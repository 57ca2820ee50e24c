package game

import "time"

// Clock turns frame timestamps into clamped real deltas.
// The first tick after Reset only establishes the baseline.
type Clock struct {
	maxDelta time.Duration
	last     time.Time
	primed   bool
}

// NewClock creates a clock that clamps deltas to maxDelta (0 disables clamping).
func NewClock(maxDelta time.Duration) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Reset forgets the baseline; the next Tick is discarded.
func (c *Clock) Reset() {
	c.primed = false
	c.last = time.Time{}
}

// Tick returns the real time elapsed since the previous tick.
// ok is false on the baseline tick. Timestamps going backwards yield zero.
func (c *Clock) Tick(now time.Time) (delta time.Duration, ok bool) {
	if !c.primed {
		c.primed = true
		c.last = now
		return 0, false
	}

	delta = now.Sub(c.last)
	c.last = now

	if delta < 0 {
		delta = 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta, true
}

// scaleDuration multiplies a duration by a factor.
func scaleDuration(d time.Duration, factor float64) time.Duration {
	return time.Duration(float64(d) * factor)
}
