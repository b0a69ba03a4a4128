package manicotti

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

// TextureDef names the asset for one visual state, with an optional
// touch-screen variant. Which variant resolves is decided once at setup
// time from the configured touch capability, never per frame.
type TextureDef struct {
	Standard    string `toml:"standard"`
	TouchScreen string `toml:"touch_screen"`
}

// Name returns the asset name to resolve for this texture.
// The touch variant is used only when the device capability says so and
// the definition actually provides one.
func (t TextureDef) Name(touchScreen bool) string {
	if touchScreen && t.TouchScreen != "" {
		return t.TouchScreen
	}
	return t.Standard
}

// ButtonDef describes one interactive button in a menu definition.
// Geometry is in canonical units; it is scaled by the ratio of the actual
// window height to the menu's canonical window height.
type ButtonDef struct {
	ID           constants.ButtonID `toml:"id"`
	LabelID      string             `toml:"label"` // optional i18n message id
	StartsActive bool               `toml:"starts_active"`

	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	W float64 `toml:"w"`
	H float64 `toml:"h"`

	// Ordered neighbor candidates per direction; first visible wins.
	// A direction may be omitted entirely.
	NavUp    []constants.ButtonID `toml:"nav_up"`
	NavDown  []constants.ButtonID `toml:"nav_down"`
	NavLeft  []constants.ButtonID `toml:"nav_left"`
	NavRight []constants.ButtonID `toml:"nav_right"`

	TextureNormal  []TextureDef `toml:"texture_normal"`
	TexturePressed *TextureDef  `toml:"texture_pressed"`

	// Optional overrides; empty falls back to the menu-wide defaults.
	Shader         string `toml:"shader"`
	InactiveShader string `toml:"inactive_shader"`
}

// Nav returns the candidate list for one directional bit.
func (b *ButtonDef) Nav(direction constants.LogicalInput) []constants.ButtonID {
	switch direction {
	case constants.LogicalUp:
		return b.NavUp
	case constants.LogicalDown:
		return b.NavDown
	case constants.LogicalLeft:
		return b.NavLeft
	case constants.LogicalRight:
		return b.NavRight
	}
	return nil
}

// StaticImageDef describes one decorative, non-interactive image.
type StaticImageDef struct {
	ID constants.ButtonID `toml:"id"`

	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	W float64 `toml:"w"`
	H float64 `toml:"h"`

	Textures []TextureDef `toml:"texture"`
	Shader   string       `toml:"shader"`

	// RenderAfterButtons places the image in front of the buttons instead
	// of behind them.
	RenderAfterButtons bool `toml:"render_after_buttons"`
}

// MenuDef is a read-only menu definition, typically loaded from a TOML
// file. The same definition drives both Menu.LoadAssets and Menu.Setup.
type MenuDef struct {
	// CanonicalWindowHeight is the reference height all geometry is
	// authored against. Must be positive.
	CanonicalWindowHeight float64 `toml:"canonical_window_height"`

	StartingSelection constants.ButtonID `toml:"starting_selection"`

	DefaultShader         string `toml:"default_shader"`
	DefaultInactiveShader string `toml:"default_inactive_shader"`

	Buttons []ButtonDef      `toml:"button"`
	Images  []StaticImageDef `toml:"image"`
}

// Validate checks the structural constraints a definition must satisfy.
// Duplicate IDs are a documented limitation, not checked here: lookups
// resolve duplicates deterministically to the first-declared entry.
func (d *MenuDef) Validate() error {
	if d.CanonicalWindowHeight <= 0 {
		return fmt.Errorf("menu definition: canonical_window_height must be positive, got %v", d.CanonicalWindowHeight)
	}
	for i := range d.Buttons {
		if d.Buttons[i].ID.IsSentinel() {
			return fmt.Errorf("menu definition: button %d uses reserved id %d", i, d.Buttons[i].ID)
		}
	}
	for i := range d.Images {
		if d.Images[i].ID.IsSentinel() {
			return fmt.Errorf("menu definition: image %d uses reserved id %d", i, d.Images[i].ID)
		}
	}
	return nil
}

// FindButtonDef returns the first declared button definition with the
// given id, or nil.
func (d *MenuDef) FindButtonDef(id constants.ButtonID) *ButtonDef {
	for i := range d.Buttons {
		if d.Buttons[i].ID == id {
			return &d.Buttons[i]
		}
	}
	return nil
}

// LoadMenuDef parses and validates a TOML menu definition file.
func LoadMenuDef(path string) (*MenuDef, error) {
	var def MenuDef
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return nil, fmt.Errorf("menu definition %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("menu definition %s: %w", path, err)
	}
	return &def, nil
}
