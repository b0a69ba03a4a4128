package manicotti

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

// StaticImage is a non-interactive decorative element. It carries no
// per-frame state; only its resolved visuals and render-order flag.
type StaticImage struct {
	def             *StaticImageDef
	materials       []*Material
	shader          *Shader
	canonicalHeight float64
}

// Initialize attaches the definition and resolved visuals. Failed
// resolutions arrive as nil entries; the image is constructed regardless.
func (s *StaticImage) Initialize(def *StaticImageDef, materials []*Material, shader *Shader, canonicalHeight float64) {
	s.def = def
	s.materials = materials
	s.shader = shader
	s.canonicalHeight = canonicalHeight
}

// ID returns the image's identity, or ButtonIDUndefined before setup.
func (s *StaticImage) ID() constants.ButtonID {
	if s.def == nil {
		return constants.ButtonIDUndefined
	}
	return s.def.ID
}

// Def returns the static definition.
func (s *StaticImage) Def() *StaticImageDef { return s.def }

// Shader returns the resolved shader handle (nil when resolution failed).
func (s *StaticImage) Shader() *Shader { return s.shader }

// RenderAfterButtons reports whether the image draws in front of the
// buttons instead of behind them.
func (s *StaticImage) RenderAfterButtons() bool {
	return s.def != nil && s.def.RenderAfterButtons
}

// CurrentMaterial returns the first resolved material, or nil.
func (s *StaticImage) CurrentMaterial() *Material {
	for _, m := range s.materials {
		if m != nil {
			return m
		}
	}
	return nil
}

// ScreenRect returns the image's draw rectangle in window coordinates.
func (s *StaticImage) ScreenRect(windowWidth, windowHeight int32) sdl.Rect {
	scale := 1.0
	if s.canonicalHeight > 0 {
		scale = float64(windowHeight) / s.canonicalHeight
	}
	return sdl.Rect{
		X: int32(s.def.X * scale),
		Y: int32(s.def.Y * scale),
		W: int32(s.def.W * scale),
		H: int32(s.def.H * scale),
	}
}
