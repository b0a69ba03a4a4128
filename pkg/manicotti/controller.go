package manicotti

import (
	"time"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// ControllerInput drives Menu.HandleControllerInput from a raw evdev pad:
// select/cancel pass through as press edges, while held directions go
// through a delay-then-repeat stepper so holding a direction keeps
// navigating. Embedded devices often expose pads only through /dev/input,
// bypassing SDL's controller layer.
type ControllerInput struct {
	pad    *internal.Gamepad
	id     constants.ControllerID
	repeat internal.DirectionalRepeat
}

// ListGamepadPaths returns the /dev/input device paths to try with
// NewControllerInput.
func ListGamepadPaths() []string {
	return internal.ListGamepadPaths()
}

// NewControllerInput opens the evdev device at path and tags everything it
// produces with the given controller id.
func NewControllerInput(path string, id constants.ControllerID) (*ControllerInput, error) {
	pad, err := internal.OpenGamepad(path)
	if err != nil {
		return nil, NewInfrastructureError("open_gamepad", err)
	}
	return &ControllerInput{
		pad:    pad,
		id:     id,
		repeat: internal.NewDirectionalRepeat(),
	}, nil
}

// ID returns the controller id events from this pad carry.
func (c *ControllerInput) ID() constants.ControllerID {
	return c.id
}

// Update returns the logical input mask to feed HandleControllerInput this
// frame. Directions come from the repeat stepper; the pad's raw direction
// edges are discarded so a held direction does not double-fire.
func (c *ControllerInput) Update(delta time.Duration) constants.LogicalInput {
	c.repeat.SetHeld(c.pad.Held())

	mask := c.pad.Poll() &^ constants.LogicalDirections
	mask |= c.repeat.Update(delta)
	return mask
}

// Close releases the underlying device.
func (c *ControllerInput) Close() {
	c.pad.Close()
}
