package render

import "time"

// MaxFrameStep caps the elapsed time reported for a single frame so a stall
// does not turn into a jump.
const MaxFrameStep = 50 * time.Millisecond

// Clock turns frame timestamps into clamped per-frame deltas.
type Clock struct {
	last    time.Time
	started bool
}

// Tick returns the seconds since the previous tick, clamped to
// [0, MaxFrameStep]. The first tick returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	if d > MaxFrameStep {
		d = MaxFrameStep
	}
	return d.Seconds()
}

func (c *Clock) Reset() { c.started = false }
