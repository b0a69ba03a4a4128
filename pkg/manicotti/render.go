package manicotti

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// Renderer draws individual menu elements. Menu.Render drives it in the
// back-to-front order; implementations decide how an element looks.
type Renderer interface {
	DrawButton(b *Button)
	DrawImage(img *StaticImage)
}

// Inactive buttons without an inactive shader draw dimmed instead.
const inactiveAlpha = 128

// SDLRenderer draws menu elements as textured quads into the framework
// window. It approximates shader state with texture modulation: a nil
// shader draws nothing (the visible failure signal for a bad definition)
// and a missing inactive shader falls back to alpha dimming.
type SDLRenderer struct {
	window *internal.Window
}

// NewSDLRenderer creates a renderer targeting the framework window.
func NewSDLRenderer(window *internal.Window) *SDLRenderer {
	return &SDLRenderer{window: window}
}

// DrawButton draws a button at its scaled geometry with the press-depth
// shrink applied. Invisible buttons and buttons without a shader or
// material are skipped.
func (r *SDLRenderer) DrawButton(b *Button) {
	if !b.IsVisible() || b.Shader() == nil {
		return
	}
	mat := b.CurrentMaterial()
	if mat == nil || mat.Texture == nil {
		return
	}

	width, height := r.window.Size()
	rect := b.ScreenRect(width, height)

	// Press feedback: shrink toward the center by up to 10%.
	if depth := b.PressDepth(); depth > 0 {
		shrinkW := int32(float64(rect.W) * 0.1 * depth)
		shrinkH := int32(float64(rect.H) * 0.1 * depth)
		rect.X += shrinkW / 2
		rect.Y += shrinkH / 2
		rect.W -= shrinkW
		rect.H -= shrinkH
	}

	alpha := uint8(255)
	if !b.IsActive() && b.InactiveShader() == nil {
		alpha = inactiveAlpha
	}
	mat.Texture.SetAlphaMod(alpha)
	r.window.Renderer.Copy(mat.Texture, nil, &rect)
	mat.Texture.SetAlphaMod(255)
}

// DrawImage draws a static image at its scaled geometry. Images without a
// shader or material are skipped.
func (r *SDLRenderer) DrawImage(img *StaticImage) {
	if img.Shader() == nil {
		return
	}
	mat := img.CurrentMaterial()
	if mat == nil || mat.Texture == nil {
		return
	}

	width, height := r.window.Size()
	rect := img.ScreenRect(width, height)
	r.window.Renderer.Copy(mat.Texture, nil, &rect)
}
