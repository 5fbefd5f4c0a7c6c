package blink

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestClock_OverrideThenDutyCycle(t *testing.T) {
	c := New(500*ms, 500*ms)
	c.Override(true) // at t=0: anchor = -500ms

	steps := []struct {
		now     time.Duration
		visible bool
		changed bool
	}{
		{now: 0, visible: true, changed: false},
		{now: 400 * ms, visible: true, changed: false},
		{now: 900 * ms, visible: false, changed: true}, // elapsed 1400ms, off phase restarts at 900ms
		{now: 1200 * ms, visible: false, changed: false},
		{now: 1400 * ms, visible: true, changed: true}, // elapsed 500ms
		{now: 1900 * ms, visible: true, changed: false},
		{now: 1901 * ms, visible: false, changed: true},
	}
	for _, s := range steps {
		changed := c.Tick(s.now)
		if got := c.Visible(); got != s.visible {
			t.Fatalf("Tick(%v) visible: got %v, want %v", s.now, got, s.visible)
		}
		if changed != s.changed {
			t.Fatalf("Tick(%v) changed: got %v, want %v", s.now, changed, s.changed)
		}
	}
}

func TestClock_FirstTickStartsSolid(t *testing.T) {
	c := New(0, 0)
	if c.Off() != DefaultOff || c.On() != DefaultOn {
		t.Fatalf("defaults: got off=%v on=%v", c.Off(), c.On())
	}

	c.Tick(10 * time.Second)
	if !c.Visible() {
		t.Fatalf("expected visible on first tick")
	}
	c.Tick(10*time.Second + 500*ms)
	if !c.Visible() {
		t.Fatalf("expected visible through the first on phase")
	}
	c.Tick(10*time.Second + 600*ms)
	if c.Visible() {
		t.Fatalf("expected hidden after the first on phase")
	}
}

func TestClock_LongPauseCatchesUp(t *testing.T) {
	c := New(500*ms, 500*ms)
	c.Tick(0)
	if !c.Visible() {
		t.Fatalf("expected visible")
	}

	// A long stall lands outside the window: the off phase restarts at the
	// sampled time.
	c.Tick(10 * time.Second)
	if c.Visible() {
		t.Fatalf("expected hidden after stall")
	}
	c.Tick(10*time.Second + 499*ms)
	if c.Visible() {
		t.Fatalf("expected hidden within the off phase")
	}
	c.Tick(10*time.Second + 500*ms)
	if !c.Visible() {
		t.Fatalf("expected visible at the end of the off phase")
	}
}

func TestClock_OverrideUsesLatestTick(t *testing.T) {
	c := New(300*ms, 200*ms)
	c.Tick(0)
	c.Tick(600 * ms) // elapsed 900ms: hidden, anchor 600ms
	if c.Visible() {
		t.Fatalf("expected hidden")
	}

	if changed := c.Override(true); !changed {
		t.Fatalf("override should report a visibility change")
	}
	if !c.Visible() {
		t.Fatalf("expected visible immediately after override")
	}
	c.Tick(800 * ms) // elapsed 500ms == off+on: still visible
	if !c.Visible() {
		t.Fatalf("expected visible at the end of the forced on phase")
	}
	c.Tick(801 * ms)
	if c.Visible() {
		t.Fatalf("expected hidden after the forced on phase")
	}

	c.Tick(1000 * ms)
	c.Override(false)
	if c.Visible() {
		t.Fatalf("expected hidden after override(false)")
	}
	c.Tick(1299 * ms)
	if c.Visible() {
		t.Fatalf("expected hidden during the forced off phase")
	}
	c.Tick(1300 * ms)
	if !c.Visible() {
		t.Fatalf("expected visible after the forced off phase")
	}
}

func TestClock_DisabledIsSolidAndFrozen(t *testing.T) {
	c := New(500*ms, 500*ms)
	c.Tick(0)
	c.Tick(1100 * ms) // hidden, anchor 1100ms
	if c.Visible() {
		t.Fatalf("expected hidden")
	}

	if !c.SetEnabled(false) {
		t.Fatalf("SetEnabled(false) should report change")
	}
	if c.SetEnabled(false) {
		t.Fatalf("repeated SetEnabled(false) should be a no-op")
	}
	if !c.Visible() {
		t.Fatalf("disabled clock must be visible")
	}
	for _, now := range []time.Duration{1200 * ms, 1300 * ms, 5 * time.Second} {
		if changed := c.Tick(now); changed {
			t.Fatalf("Tick(%v) on disabled clock reported change", now)
		}
		if !c.Visible() {
			t.Fatalf("Tick(%v) on disabled clock: expected visible", now)
		}
	}
	if got := c.Now(); got != 5*time.Second {
		t.Fatalf("Now: got %v, want %v", got, 5*time.Second)
	}

	// Override while disabled moves the anchor but never hides the caret.
	c.Override(false)
	if !c.Visible() {
		t.Fatalf("disabled clock must stay visible after override(false)")
	}
}

func TestClock_SettersReportChange(t *testing.T) {
	c := New(500*ms, 500*ms)
	if c.SetOff(500 * ms) {
		t.Fatalf("SetOff with same value should report no change")
	}
	if !c.SetOff(250 * ms) {
		t.Fatalf("SetOff with new value should report change")
	}
	c.SetOn(-1)
	if c.On() != DefaultOn {
		t.Fatalf("SetOn(-1): got %v, want default %v", c.On(), DefaultOn)
	}
	if !c.SetOn(100 * ms) {
		t.Fatalf("SetOn with new value should report change")
	}
	if c.Off() != 250*ms || c.On() != 100*ms {
		t.Fatalf("durations: got off=%v on=%v", c.Off(), c.On())
	}
}
