// Package constants defines shared identity, input, and configuration values
// used throughout the manicotti menu engine.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names honored by the framework.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	TouchScreenEnvVar  = "TOUCH_SCREEN"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// ButtonID identifies a menu button or static image within one menu
// instance. Applications define their own positive ID constants; the
// non-positive range is reserved for sentinels that never collide with
// real widget identities.
type ButtonID int

const (
	// ButtonIDUndefined is the zero value: no widget. Used for "no focus"
	// and for the empty-queue selection sentinel.
	ButtonIDUndefined ButtonID = 0
	// ButtonIDInvalidInput marks a selection or navigation attempt that
	// landed on nothing actionable.
	ButtonIDInvalidInput ButtonID = -1
	// ButtonIDCancel marks a cancel action from a controller.
	ButtonIDCancel ButtonID = -2
)

// IsSentinel returns true for the reserved non-widget identities.
func (id ButtonID) IsSentinel() bool {
	return id <= ButtonIDUndefined
}

func (id ButtonID) String() string {
	switch id {
	case ButtonIDUndefined:
		return "Undefined"
	case ButtonIDInvalidInput:
		return "InvalidInput"
	case ButtonIDCancel:
		return "Cancel"
	default:
		return "Button"
	}
}

// ControllerID tags a selection event with its input source.
// Physical controllers are non-negative indices assigned by the host.
type ControllerID int

const (
	// ControllerUndefined is the source on the empty-queue sentinel event.
	ControllerUndefined ControllerID = -2
	// ControllerTouch is the source for pointer/touch-originated events,
	// including navigation-failure events.
	ControllerTouch ControllerID = -1
)

func (c ControllerID) String() string {
	switch c {
	case ControllerUndefined:
		return "Undefined"
	case ControllerTouch:
		return "Touch"
	default:
		return "Controller"
	}
}

// LogicalInput is a bitmask of abstract directional/select/cancel signals,
// mapped from physical hardware. This abstraction lets the menu engine work
// with keyboards, SDL game controllers, and raw evdev pads alike.
type LogicalInput uint32

const (
	LogicalUp LogicalInput = 1 << iota
	LogicalDown
	LogicalLeft
	LogicalRight
	LogicalSelect
	LogicalCancel
)

// LogicalDirections is the mask covering the four directional bits.
const LogicalDirections = LogicalUp | LogicalDown | LogicalLeft | LogicalRight

// Has returns true if every bit in mask is asserted.
func (in LogicalInput) Has(mask LogicalInput) bool {
	return in&mask == mask
}

func (in LogicalInput) String() string {
	if in == 0 {
		return "None"
	}
	names := []struct {
		bit  LogicalInput
		name string
	}{
		{LogicalUp, "Up"},
		{LogicalDown, "Down"},
		{LogicalLeft, "Left"},
		{LogicalRight, "Right"},
		{LogicalSelect, "Select"},
		{LogicalCancel, "Cancel"},
	}
	var parts []string
	for _, n := range names {
		if in&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Default timing constants.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first directional repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // Interval between subsequent repeats
)
