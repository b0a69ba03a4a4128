package internal

import (
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

// Gamepad reads a raw evdev input device and accumulates logical input
// edges for the frame loop. Embedded devices often expose pads only
// through /dev/input, bypassing SDL's controller layer.
//
// A reader goroutine owns the blocking device reads; Poll and Held are
// safe to call from the frame-update thread.
type Gamepad struct {
	dev  *evdev.InputDevice
	path string

	mu      sync.Mutex
	held    constants.LogicalInput
	pressed constants.LogicalInput // edges since last Poll

	done chan struct{}
}

// ListGamepadPaths returns the /dev/input paths of devices that expose
// EV_KEY events, the candidates for OpenGamepad.
func ListGamepadPaths() []string {
	devicePaths, err := evdev.ListDevicePaths()
	if err != nil {
		GetInternalLogger().Warn("Failed to list input devices", "error", err)
		return nil
	}
	var paths []string
	for _, dp := range devicePaths {
		paths = append(paths, dp.Path)
	}
	return paths
}

// OpenGamepad opens an evdev device and starts its reader goroutine.
func OpenGamepad(path string) (*Gamepad, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	g := &Gamepad{
		dev:  dev,
		path: path,
		done: make(chan struct{}),
	}

	if name, err := dev.Name(); err == nil {
		GetInternalLogger().Debug("Opened gamepad", "path", path, "name", name)
	}

	go g.readLoop()
	return g, nil
}

func (g *Gamepad) readLoop() {
	for {
		select {
		case <-g.done:
			return
		default:
		}

		event, err := g.dev.ReadOne()
		if err != nil {
			GetInternalLogger().Warn("Gamepad read failed", "path", g.path, "error", err)
			return
		}
		if event.Type != evdev.EV_KEY {
			continue
		}

		bit := keyCodeToLogical(event.Code)
		if bit == 0 {
			continue
		}

		g.mu.Lock()
		switch event.Value {
		case 1: // press
			g.held |= bit
			g.pressed |= bit
		case 0: // release
			g.held &^= bit
		}
		g.mu.Unlock()
	}
}

// Poll returns the logical input bits pressed since the previous Poll and
// clears them. Call once per frame and feed the result to
// Menu.HandleControllerInput.
func (g *Gamepad) Poll() constants.LogicalInput {
	g.mu.Lock()
	defer g.mu.Unlock()
	mask := g.pressed
	g.pressed = 0
	return mask
}

// Held returns the directional bits currently held, for a
// DirectionalRepeat.
func (g *Gamepad) Held() constants.LogicalInput {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held & constants.LogicalDirections
}

// Close stops the reader and releases the device.
func (g *Gamepad) Close() {
	close(g.done)
	g.dev.Close()
}

func keyCodeToLogical(code evdev.EvCode) constants.LogicalInput {
	switch code {
	case evdev.KEY_UP, evdev.BTN_DPAD_UP:
		return constants.LogicalUp
	case evdev.KEY_DOWN, evdev.BTN_DPAD_DOWN:
		return constants.LogicalDown
	case evdev.KEY_LEFT, evdev.BTN_DPAD_LEFT:
		return constants.LogicalLeft
	case evdev.KEY_RIGHT, evdev.BTN_DPAD_RIGHT:
		return constants.LogicalRight
	case evdev.KEY_ENTER, evdev.BTN_SOUTH:
		return constants.LogicalSelect
	case evdev.KEY_ESC, evdev.BTN_EAST:
		return constants.LogicalCancel
	}
	return 0
}
