package internal

import (
	"time"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

// DirectionalRepeat turns held directional bits into per-frame logical
// input, with the usual delay-then-repeat cadence. Unlike a wall-clock
// repeater it is stepped by the frame delta, so it stays deterministic
// under the frame-stepped execution model.
type DirectionalRepeat struct {
	held           constants.LogicalInput
	pending        bool
	sinceEmit      time.Duration
	hasRepeated    bool
	repeatDelay    time.Duration
	repeatInterval time.Duration
}

// NewDirectionalRepeat creates a repeater with the default timing:
// 300ms before the first repeat, then 50ms between repeats.
func NewDirectionalRepeat() DirectionalRepeat {
	return NewDirectionalRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalRepeatWithTiming creates a repeater with custom timing.
func NewDirectionalRepeatWithTiming(delay, interval time.Duration) DirectionalRepeat {
	return DirectionalRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld records the directional bits currently held. Non-directional
// bits are ignored. Releasing every direction re-arms the initial delay.
func (d *DirectionalRepeat) SetHeld(mask constants.LogicalInput) {
	mask &= constants.LogicalDirections
	if mask == d.held {
		return
	}
	d.held = mask
	d.pending = mask != 0
	d.sinceEmit = 0
	d.hasRepeated = false
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalRepeat) IsHeld() bool {
	return d.held != 0
}

// Update advances the repeat timer by the frame delta and returns the
// directional bits to process this frame: the held mask on the frame a
// hold begins and on every repeat tick after that, zero otherwise.
func (d *DirectionalRepeat) Update(delta time.Duration) constants.LogicalInput {
	if d.held == 0 {
		return 0
	}

	// Initial press fires immediately.
	if d.pending {
		d.pending = false
		return d.held
	}

	d.sinceEmit += delta

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.sinceEmit >= threshold {
		d.sinceEmit = 0
		d.hasRepeated = true
		return d.held
	}

	return 0
}

// Reset clears all held directions and timing state.
func (d *DirectionalRepeat) Reset() {
	d.held = 0
	d.pending = false
	d.sinceEmit = 0
	d.hasRepeated = false
}
