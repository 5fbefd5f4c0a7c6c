// Package blink implements the caret's blink duty cycle.
//
// Time is sampled, never pushed: the owner calls Tick once per frame with a
// monotonic timestamp and reads Visible. Timestamps are offsets from an
// arbitrary epoch; only their differences matter.
package blink

import "time"

const (
	DefaultOff = 500 * time.Millisecond
	DefaultOn  = 500 * time.Millisecond
)

// Clock tracks caret visibility. A cycle is an off phase of Off followed by
// an on phase of On, measured from the anchor.
type Clock struct {
	off, on time.Duration

	anchor  time.Duration
	now     time.Duration
	started bool

	visible bool
	enabled bool
}

// New returns an enabled clock. Non-positive durations fall back to the
// defaults.
func New(off, on time.Duration) *Clock {
	c := &Clock{visible: true, enabled: true}
	c.SetOff(off)
	c.SetOn(on)
	return c
}

func (c *Clock) Visible() bool { return c.visible }

func (c *Clock) Enabled() bool { return c.enabled }

func (c *Clock) Off() time.Duration { return c.off }

func (c *Clock) On() time.Duration { return c.on }

// Now returns the timestamp of the latest Tick.
func (c *Clock) Now() time.Duration { return c.now }

// Tick samples the clock at now and reports whether visibility changed.
//
// A disabled clock is always visible and its anchor does not move. The first
// tick of a fresh clock starts the cycle at the beginning of an on phase.
func (c *Clock) Tick(now time.Duration) bool {
	c.now = now
	prev := c.visible

	if !c.enabled {
		c.visible = true
		return prev != c.visible
	}
	if !c.started {
		c.started = true
		c.anchor = now - c.off
	}

	elapsed := now - c.anchor
	switch {
	case elapsed >= c.off && elapsed <= c.off+c.on:
		c.visible = true
	case c.visible:
		// Restart the off phase.
		c.anchor = now
		c.visible = false
	}
	return prev != c.visible
}

// Override forces the phase at the latest observed timestamp. Visible starts
// a fresh on phase, so the caret stays solid for On before blinking again;
// hidden starts a fresh off phase.
func (c *Clock) Override(visible bool) bool {
	prev := c.visible
	c.started = true
	if visible {
		c.anchor = c.now - c.off
	} else {
		c.anchor = c.now
	}
	if c.enabled {
		c.visible = visible
	}
	return prev != c.visible
}

// SetEnabled turns blinking on or off and reports whether the setting changed.
// Disabling makes the caret solid immediately.
func (c *Clock) SetEnabled(enabled bool) bool {
	if c.enabled == enabled {
		return false
	}
	c.enabled = enabled
	if !enabled {
		c.visible = true
	}
	return true
}

// SetOff sets the off phase duration and reports whether it changed.
func (c *Clock) SetOff(d time.Duration) bool {
	if d <= 0 {
		d = DefaultOff
	}
	if c.off == d {
		return false
	}
	c.off = d
	return true
}

// SetOn sets the on phase duration and reports whether it changed.
func (c *Clock) SetOn(d time.Duration) bool {
	if d <= 0 {
		d = DefaultOn
	}
	if c.on == d {
		return false
	}
	c.on = d
	return true
}
