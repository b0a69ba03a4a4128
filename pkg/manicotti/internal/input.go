package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

// InputProcessor translates SDL events into logical input bits and tracks
// the pointer state the menu's touch hit-testing polls each frame.
// It is driven from the frame-update thread only.
type InputProcessor struct {
	ptrX, ptrY  int32
	ptrDown     bool
	ptrReleased bool

	controllers map[sdl.JoystickID]*sdl.GameController
}

var inputProcessor *InputProcessor

func InitInputProcessor() {
	inputProcessor = &InputProcessor{
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
	inputProcessor.openControllers()
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func (p *InputProcessor) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			p.controllers[c.Joystick().InstanceID()] = c
		}
	}
}

// CloseControllers releases all opened game controllers.
func (p *InputProcessor) CloseControllers() {
	for id, c := range p.controllers {
		c.Close()
		delete(p.controllers, id)
	}
}

// BeginFrame resets the per-frame pointer edges. Call once at the top of
// every frame, before pumping events.
func (p *InputProcessor) BeginFrame() {
	p.ptrReleased = false
}

// ProcessSDLEvent folds one SDL event into the processor state and returns
// the logical input bits the event asserts (press edges only; releases and
// repeats return zero).
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) constants.LogicalInput {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return 0
		}
		return keycodeToLogical(e.Keysym.Sym)

	case *sdl.ControllerButtonEvent:
		if e.Type != sdl.CONTROLLERBUTTONDOWN {
			return 0
		}
		return controllerButtonToLogical(e.Button)

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			p.openControllers()
		}

	case *sdl.MouseMotionEvent:
		p.ptrX, p.ptrY = e.X, e.Y

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return 0
		}
		p.ptrX, p.ptrY = e.X, e.Y
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			p.ptrDown = true
		case sdl.MOUSEBUTTONUP:
			if p.ptrDown {
				p.ptrReleased = true
			}
			p.ptrDown = false
		}

	case *sdl.TouchFingerEvent:
		// Finger coordinates are normalized; scale to the window.
		if w := GetWindow(); w != nil {
			width, height := w.Size()
			p.ptrX = int32(e.X * float32(width))
			p.ptrY = int32(e.Y * float32(height))
		}
		switch e.Type {
		case sdl.FINGERDOWN:
			p.ptrDown = true
		case sdl.FINGERUP:
			if p.ptrDown {
				p.ptrReleased = true
			}
			p.ptrDown = false
		}
	}
	return 0
}

// PointerPosition returns the last known pointer location in window
// coordinates.
func (p *InputProcessor) PointerPosition() (int32, int32) {
	return p.ptrX, p.ptrY
}

// PointerDown reports whether a finger or the left mouse button is held.
func (p *InputProcessor) PointerDown() bool {
	return p.ptrDown
}

// PointerReleased reports whether the pointer was released this frame.
func (p *InputProcessor) PointerReleased() bool {
	return p.ptrReleased
}

func keycodeToLogical(sym sdl.Keycode) constants.LogicalInput {
	switch sym {
	case sdl.K_UP:
		return constants.LogicalUp
	case sdl.K_DOWN:
		return constants.LogicalDown
	case sdl.K_LEFT:
		return constants.LogicalLeft
	case sdl.K_RIGHT:
		return constants.LogicalRight
	case sdl.K_RETURN, sdl.K_SPACE:
		return constants.LogicalSelect
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.LogicalCancel
	}
	return 0
}

func controllerButtonToLogical(button uint8) constants.LogicalInput {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.LogicalUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.LogicalDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.LogicalLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.LogicalRight
	case sdl.CONTROLLER_BUTTON_A, sdl.CONTROLLER_BUTTON_START:
		return constants.LogicalSelect
	case sdl.CONTROLLER_BUTTON_B, sdl.CONTROLLER_BUTTON_BACK:
		return constants.LogicalCancel
	}
	return 0
}
