package manicotti

import (
	"time"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// Menu is the focus-driven navigation core of an on-screen overlay. It
// owns an ordered collection of buttons and static images, the single
// current-focus identity, and a FIFO of pending selection events the host
// drains once per frame.
//
// Everything runs on the frame-update thread; no method is safe to call
// concurrently with another on the same instance. The host calls
// AdvanceFrame exactly once per frame and drains with GetRecentSelection
// before the next advance. The queue is cleared unconditionally at the
// top of every advance, so undrained events are lost.
type Menu struct {
	def          *MenuDef
	buttons      []Button
	images       []StaticImage
	currentFocus constants.ButtonID
	pending      []MenuSelection
}

// Setup (re)builds the widget and image collections from a definition and
// resets focus to its declared starting selection. A nil definition clears
// everything out: empty collections, undefined focus, no asset calls.
//
// Asset resolution failures never abort setup. A button without a shader
// is logged and constructed with a nil handle (rendering nothing is the
// visible failure signal); a broken static image is logged as an error.
// Either way the collections end up exactly as long as the definition
// declares.
func (m *Menu) Setup(def *MenuDef, assets AssetManager) {
	m.clearRecentSelections()
	if def == nil {
		m.def = nil
		m.buttons = m.buttons[:0]
		m.images = m.images[:0]
		m.currentFocus = constants.ButtonIDUndefined
		return // Nothing to set up. Just clearing things out.
	}

	if def.CanonicalWindowHeight <= 0 {
		internal.GetInternalLogger().Error("Menu definition has non-positive canonical window height",
			"height", def.CanonicalWindowHeight)
	}

	touch := TouchScreenCapability()

	m.def = def
	m.buttons = make([]Button, len(def.Buttons))
	m.images = make([]StaticImage, len(def.Images))
	m.currentFocus = def.StartingSelection

	for i := range def.Buttons {
		bd := &def.Buttons[i]
		b := &m.buttons[i]

		for j, tex := range bd.TextureNormal {
			b.SetUpMaterial(j, assets.FindMaterial(tex.Name(touch)))
		}
		if bd.TexturePressed != nil {
			b.SetDownMaterial(assets.FindMaterial(bd.TexturePressed.Name(touch)))
		}

		shaderName := bd.Shader
		if shaderName == "" {
			shaderName = def.DefaultShader
		}
		shader := assets.FindShader(shaderName)
		if shader == nil {
			internal.GetInternalLogger().Info("Buttons used in menus must specify a shader",
				"button", bd.ID, "shader", shaderName)
		}

		inactiveShaderName := bd.InactiveShader
		if inactiveShaderName == "" {
			inactiveShaderName = def.DefaultInactiveShader
		}

		b.SetShader(shader)
		b.SetInactiveShader(assets.FindShader(inactiveShaderName))
		b.SetButtonDef(bd)
		b.SetActive(bd.StartsActive)
		b.SetVisible(true)
		b.SetHighlighted(true)
		b.SetCanonicalWindowHeight(def.CanonicalWindowHeight)
		b.SetLabel(LocalizeLabel(bd.LabelID))
	}

	for i := range def.Images {
		imgDef := &def.Images[i]

		materials := make([]*Material, len(imgDef.Textures))
		for j, tex := range imgDef.Textures {
			name := tex.Name(touch)
			materials[j] = assets.FindMaterial(name)
			if materials[j] == nil {
				internal.GetInternalLogger().Error("Static image not found", "material", name)
			}
		}

		shaderName := imgDef.Shader
		if shaderName == "" {
			shaderName = def.DefaultShader
		}
		shader := assets.FindShader(shaderName)
		if shader == nil {
			internal.GetInternalLogger().Error("Static image missing shader", "shader", shaderName)
		}

		m.images[i].Initialize(imgDef, materials, shader, def.CanonicalWindowHeight)
	}
}

// LoadAssets instructs the asset manager to eagerly load every shader and
// material the definition could reference, without constructing any widget
// state. Call before Setup to front-load the I/O.
func (m *Menu) LoadAssets(def *MenuDef, assets AssetManager) {
	if def == nil {
		return
	}

	touch := TouchScreenCapability()

	assets.LoadShader(def.DefaultShader)
	assets.LoadShader(def.DefaultInactiveShader)

	for i := range def.Buttons {
		bd := &def.Buttons[i]
		for _, tex := range bd.TextureNormal {
			assets.LoadMaterial(tex.Name(touch))
		}
		if bd.TexturePressed != nil {
			assets.LoadMaterial(bd.TexturePressed.Name(touch))
		}
		if bd.Shader != "" {
			assets.LoadShader(bd.Shader)
		}
		if bd.InactiveShader != "" {
			assets.LoadShader(bd.InactiveShader)
		}
	}

	for i := range def.Images {
		imgDef := &def.Images[i]
		for _, tex := range imgDef.Textures {
			assets.LoadMaterial(tex.Name(touch))
		}
		if imgDef.Shader != "" {
			assets.LoadShader(imgDef.Shader)
		}
	}
}

// AdvanceFrame steps every button and folds their triggers into the event
// queue. The queue is emptied first, so after this call it holds only
// events generated during this frame.
//
// Highlight is re-derived here as a pure function of current focus. If the
// focused button went invisible since the last frame, focus stays where it
// is until the next navigation attempt re-validates it.
func (m *Menu) AdvanceFrame(delta time.Duration, input InputState, windowWidth, windowHeight int32) {
	// Start every frame with a clean list of events.
	m.clearRecentSelections()
	for i := range m.buttons {
		b := &m.buttons[i]
		b.AdvanceFrame(delta, input, windowWidth, windowHeight)
		b.SetHighlighted(m.currentFocus == b.ID())

		if b.IsTriggered() {
			id := constants.ButtonIDInvalidInput
			if b.IsActive() {
				id = b.ID()
			}
			m.pending = append(m.pending, MenuSelection{
				ButtonID:   id,
				Controller: constants.ControllerTouch,
			})
		}
	}
}

// HandleControllerInput accepts a mask of logical signals from one
// controller and navigates based on it. Each asserted bit is handled
// independently, appending to the queue in up, down, left, right, select,
// cancel order. If focus points at no existing button the whole call is a
// silent no-op.
func (m *Menu) HandleControllerInput(mask constants.LogicalInput, controller constants.ControllerID) {
	focused := m.FindButtonByID(m.currentFocus)
	if focused == nil {
		return
	}
	def := focused.Def()

	if mask.Has(constants.LogicalUp) {
		m.updateFocus(def.NavUp)
	}
	if mask.Has(constants.LogicalDown) {
		m.updateFocus(def.NavDown)
	}
	if mask.Has(constants.LogicalLeft) {
		m.updateFocus(def.NavLeft)
	}
	if mask.Has(constants.LogicalRight) {
		m.updateFocus(def.NavRight)
	}

	if mask.Has(constants.LogicalSelect) {
		id := constants.ButtonIDInvalidInput
		if focused.IsActive() {
			id = m.currentFocus
		}
		m.pending = append(m.pending, MenuSelection{ButtonID: id, Controller: controller})
	}
	if mask.Has(constants.LogicalCancel) {
		m.pending = append(m.pending, MenuSelection{ButtonID: constants.ButtonIDCancel, Controller: controller})
	}
}

// updateFocus moves focus to the first candidate that resolves to a
// visible button and stops there. Buttons are not required to provide
// candidates for every direction; an absent or exhausted list leaves focus
// unchanged and queues an invalid-input event so the host can play a
// noise.
func (m *Menu) updateFocus(candidates []constants.ButtonID) {
	for _, id := range candidates {
		if dest := m.FindButtonByID(id); dest != nil && dest.IsVisible() {
			m.SetFocus(id)
			return
		}
	}
	m.pending = append(m.pending, MenuSelection{
		ButtonID:   constants.ButtonIDInvalidInput,
		Controller: constants.ControllerTouch,
	})
}

// Render draws the overlay in three passes: images flagged to render
// behind the buttons, then the buttons, then the images flagged to render
// in front. One ordered image collection and a per-image flag stand in for
// two separately ordered collections.
func (m *Menu) Render(r Renderer) {
	for i := range m.images {
		if !m.images[i].RenderAfterButtons() {
			r.DrawImage(&m.images[i])
		}
	}
	for i := range m.buttons {
		r.DrawButton(&m.buttons[i])
	}
	for i := range m.images {
		if m.images[i].RenderAfterButtons() {
			r.DrawImage(&m.images[i])
		}
	}
}

// FindButtonByID returns the first button with the given id, or nil.
// Duplicate ids resolve to the first-declared entry.
func (m *Menu) FindButtonByID(id constants.ButtonID) *Button {
	for i := range m.buttons {
		if m.buttons[i].ID() == id {
			return &m.buttons[i]
		}
	}
	return nil
}

// FindImageByID returns the first static image with the given id, or nil.
func (m *Menu) FindImageByID(id constants.ButtonID) *StaticImage {
	for i := range m.images {
		if m.images[i].ID() == id {
			return &m.images[i]
		}
	}
	return nil
}

// NumButtons returns the size of the button collection.
func (m *Menu) NumButtons() int { return len(m.buttons) }

// NumImages returns the size of the image collection.
func (m *Menu) NumImages() int { return len(m.images) }

// GetFocus returns the identity currently holding focus.
func (m *Menu) GetFocus() constants.ButtonID { return m.currentFocus }

// SetFocus moves focus without any existence check. Hosts normally let
// navigation do this; direct calls bypass the visibility validation.
func (m *Menu) SetFocus(id constants.ButtonID) { m.currentFocus = id }

// GetRecentSelection pops the oldest pending selection. On an empty queue
// it returns NoSelection and leaves the queue untouched.
func (m *Menu) GetRecentSelection() MenuSelection {
	if len(m.pending) == 0 {
		return NoSelection
	}
	s := m.pending[0]
	m.pending = m.pending[1:]
	return s
}

func (m *Menu) clearRecentSelections() {
	m.pending = m.pending[:0]
}
