package common

// Clock turns host timestamps (seconds) into frame delta and elapsed time.
// The first tick only anchors the clock and reports a zero delta.
type Clock struct {
	started bool
	start   float64
	last    float64
	elapsed float64
}

// Tick advances the clock to now and returns the time since the previous tick.
func (c *Clock) Tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.start = now
		c.last = now
		return 0
	}

	delta := now - c.last
	if delta < 0 {
		delta = 0
	}
	c.last = now
	c.elapsed = now - c.start
	return delta
}

// Elapsed returns the seconds between the first and the latest tick.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
