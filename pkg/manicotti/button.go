package manicotti

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

// InputState is the per-frame pointer/touch query a Button polls during
// its advance. internal.InputProcessor implements it; tests supply fakes.
type InputState interface {
	PointerPosition() (x, y int32)
	PointerDown() bool
	PointerReleased() bool
}

// Full press-depth travel takes 1/pressAnimRate seconds.
const pressAnimRate = 10.0

// Button is one interactive menu control: its resolved visuals, its
// activation/visibility/highlight state, its touch hit-testing, and its
// one-frame trigger latch. Navigation links live on the ButtonDef it keeps
// a reference to.
type Button struct {
	def   *ButtonDef
	label string

	upMaterials  []*Material
	downMaterial *Material

	shader         *Shader
	inactiveShader *Shader

	active      bool
	visible     bool
	visibleWhen *atomic.Bool // if set, takes precedence over visible
	highlighted bool

	canonicalHeight float64

	pressed    bool
	triggered  bool
	pressDepth float64 // 0 = released, 1 = fully pressed
}

// ID returns the button's identity, or ButtonIDUndefined before setup.
func (b *Button) ID() constants.ButtonID {
	if b.def == nil {
		return constants.ButtonIDUndefined
	}
	return b.def.ID
}

// Def returns the static definition, the source of the per-direction
// neighbor lists.
func (b *Button) Def() *ButtonDef { return b.def }

// SetButtonDef attaches the static definition.
func (b *Button) SetButtonDef(def *ButtonDef) { b.def = def }

// Label returns the localized caption resolved at setup, if any.
func (b *Button) Label() string { return b.label }

// SetLabel sets the caption.
func (b *Button) SetLabel(label string) { b.label = label }

// IsActive reports whether the button can be selected.
func (b *Button) IsActive() bool { return b.active }

// SetActive sets whether the button can be selected. Inactive buttons
// still hit-test; their triggers surface as invalid-input events.
func (b *Button) SetActive(active bool) { b.active = active }

// IsVisible reports whether the button is drawn and navigable.
// A VisibleWhen override, when set, takes precedence.
func (b *Button) IsVisible() bool {
	if b.visibleWhen != nil {
		return b.visibleWhen.Load()
	}
	return b.visible
}

// SetVisible sets the visibility flag.
func (b *Button) SetVisible(visible bool) { b.visible = visible }

// SetVisibleWhen installs an atomic visibility override that other parts
// of the host may toggle between frames. Pass nil to remove it.
func (b *Button) SetVisibleWhen(v *atomic.Bool) { b.visibleWhen = v }

// IsHighlighted reports whether the button held focus at its last advance.
func (b *Button) IsHighlighted() bool { return b.highlighted }

// SetHighlighted sets the highlight flag. The menu rewrites it every frame
// from current focus; it is derived state, never ground truth.
func (b *Button) SetHighlighted(highlighted bool) { b.highlighted = highlighted }

// IsTriggered reports whether the button was activated by the pointer
// during its most recent advance. The latch holds for one frame only.
func (b *Button) IsTriggered() bool { return b.triggered }

// SetUpMaterial sets the normal-state material at index, growing the slice
// as needed. A nil material marks a failed resolution; the slot remains.
func (b *Button) SetUpMaterial(index int, m *Material) {
	for len(b.upMaterials) <= index {
		b.upMaterials = append(b.upMaterials, nil)
	}
	b.upMaterials[index] = m
}

// SetDownMaterial sets the pressed-state material.
func (b *Button) SetDownMaterial(m *Material) { b.downMaterial = m }

// SetShader sets the active-state shader handle (nil allowed).
func (b *Button) SetShader(s *Shader) { b.shader = s }

// SetInactiveShader sets the inactive-state shader handle (nil allowed).
func (b *Button) SetInactiveShader(s *Shader) { b.inactiveShader = s }

// Shader returns the active-state shader handle.
func (b *Button) Shader() *Shader { return b.shader }

// InactiveShader returns the inactive-state shader handle.
func (b *Button) InactiveShader() *Shader { return b.inactiveShader }

// SetCanonicalWindowHeight sets the reference height the definition
// geometry is authored against.
func (b *Button) SetCanonicalWindowHeight(h float64) { b.canonicalHeight = h }

// PressDepth returns the press animation position in [0, 1].
func (b *Button) PressDepth() float64 { return b.pressDepth }

// CurrentMaterial returns the material to draw this frame: the pressed
// material while held (when one exists), otherwise the first resolved
// normal material.
func (b *Button) CurrentMaterial() *Material {
	if b.pressed && b.downMaterial != nil {
		return b.downMaterial
	}
	for _, m := range b.upMaterials {
		if m != nil {
			return m
		}
	}
	return nil
}

// ScreenRect returns the button's hit/draw rectangle in window
// coordinates, scaled uniformly by windowHeight over the canonical height.
func (b *Button) ScreenRect(windowWidth, windowHeight int32) sdl.Rect {
	scale := 1.0
	if b.canonicalHeight > 0 {
		scale = float64(windowHeight) / b.canonicalHeight
	}
	return sdl.Rect{
		X: int32(b.def.X * scale),
		Y: int32(b.def.Y * scale),
		W: int32(b.def.W * scale),
		H: int32(b.def.H * scale),
	}
}

// AdvanceFrame steps the press animation and re-derives the pressed and
// triggered state from the pointer. The trigger latch is rearmed first, so
// it reflects this frame only.
func (b *Button) AdvanceFrame(delta time.Duration, input InputState, windowWidth, windowHeight int32) {
	b.triggered = false

	step := delta.Seconds() * pressAnimRate
	if b.pressed {
		b.pressDepth = min(1, b.pressDepth+step)
	} else {
		b.pressDepth = max(0, b.pressDepth-step)
	}

	if input == nil || b.def == nil || !b.IsVisible() {
		b.pressed = false
		return
	}

	x, y := input.PointerPosition()
	rect := b.ScreenRect(windowWidth, windowHeight)
	inside := x >= rect.X && x < rect.X+rect.W && y >= rect.Y && y < rect.Y+rect.H

	switch {
	case input.PointerDown():
		// Dragging off the button cancels the press.
		b.pressed = inside
	case input.PointerReleased():
		if b.pressed && inside {
			b.triggered = true
		}
		b.pressed = false
	default:
		b.pressed = false
	}
}
