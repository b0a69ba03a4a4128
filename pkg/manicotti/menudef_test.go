package manicotti

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

const sampleMenuTOML = `
canonical_window_height = 720
starting_selection = 10
default_shader = "shaders/ui"
default_inactive_shader = "shaders/ui_grey"

[[button]]
id = 10
label = "menu.play"
starts_active = true
x = 100.0
y = 100.0
w = 200.0
h = 80.0
nav_down = [20, 30]

  [[button.texture_normal]]
  standard = "textures/play.png"
  touch_screen = "textures/play_touch.png"

  [button.texture_pressed]
  standard = "textures/play_down.png"

[[button]]
id = 20
starts_active = false
x = 100.0
y = 200.0
w = 200.0
h = 80.0
nav_up = [10]
shader = "shaders/fancy"

  [[button.texture_normal]]
  standard = "textures/extras.png"

[[image]]
id = 500
x = 0.0
y = 0.0
w = 1280.0
h = 720.0

  [[image.texture]]
  standard = "textures/background.png"

[[image]]
id = 501
render_after_buttons = true

  [[image.texture]]
  standard = "textures/vignette.png"
`

func writeMenuFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing menu file: %v", err)
	}
	return path
}

func TestLoadMenuDef(t *testing.T) {
	def, err := LoadMenuDef(writeMenuFile(t, sampleMenuTOML))
	if err != nil {
		t.Fatalf("LoadMenuDef: %v", err)
	}

	if def.CanonicalWindowHeight != 720 {
		t.Errorf("canonical height = %v, want 720", def.CanonicalWindowHeight)
	}
	if def.StartingSelection != 10 {
		t.Errorf("starting selection = %v, want 10", def.StartingSelection)
	}
	if len(def.Buttons) != 2 || len(def.Images) != 2 {
		t.Fatalf("got %d buttons, %d images, want 2 and 2", len(def.Buttons), len(def.Images))
	}

	play := def.Buttons[0]
	if play.ID != 10 || !play.StartsActive || play.LabelID != "menu.play" {
		t.Errorf("button 0 = %+v", play)
	}
	if len(play.NavDown) != 2 || play.NavDown[0] != 20 || play.NavDown[1] != 30 {
		t.Errorf("nav_down = %v, want [20 30]", play.NavDown)
	}
	if play.TexturePressed == nil || play.TexturePressed.Standard != "textures/play_down.png" {
		t.Errorf("texture_pressed = %+v", play.TexturePressed)
	}

	extras := def.Buttons[1]
	if extras.StartsActive || extras.Shader != "shaders/fancy" {
		t.Errorf("button 1 = %+v", extras)
	}

	if def.Images[0].RenderAfterButtons || !def.Images[1].RenderAfterButtons {
		t.Error("render_after_buttons flags parsed wrong")
	}
}

func TestLoadMenuDef_RejectsZeroHeight(t *testing.T) {
	_, err := LoadMenuDef(writeMenuFile(t, `starting_selection = 10`))
	if err == nil {
		t.Fatal("want error for missing canonical_window_height")
	}
}

func TestLoadMenuDef_MissingFile(t *testing.T) {
	_, err := LoadMenuDef(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestMenuDefValidate_RejectsSentinelIDs(t *testing.T) {
	def := &MenuDef{
		CanonicalWindowHeight: 720,
		Buttons:               []ButtonDef{{ID: constants.ButtonIDCancel}},
	}
	if err := def.Validate(); err == nil {
		t.Error("want error for button using a reserved id")
	}

	def = &MenuDef{
		CanonicalWindowHeight: 720,
		Images:                []StaticImageDef{{ID: constants.ButtonIDUndefined}},
	}
	if err := def.Validate(); err == nil {
		t.Error("want error for image using a reserved id")
	}
}

func TestTextureDefName(t *testing.T) {
	both := TextureDef{Standard: "a.png", TouchScreen: "a_touch.png"}
	standardOnly := TextureDef{Standard: "a.png"}

	if got := both.Name(false); got != "a.png" {
		t.Errorf("standard mode = %q, want a.png", got)
	}
	if got := both.Name(true); got != "a_touch.png" {
		t.Errorf("touch mode = %q, want a_touch.png", got)
	}
	if got := standardOnly.Name(true); got != "a.png" {
		t.Errorf("touch mode without variant = %q, want a.png fallback", got)
	}
}

func TestButtonDefNav(t *testing.T) {
	bd := &ButtonDef{
		NavUp:    []constants.ButtonID{1},
		NavDown:  []constants.ButtonID{2},
		NavLeft:  []constants.ButtonID{3},
		NavRight: []constants.ButtonID{4},
	}

	cases := []struct {
		direction constants.LogicalInput
		want      constants.ButtonID
	}{
		{constants.LogicalUp, 1},
		{constants.LogicalDown, 2},
		{constants.LogicalLeft, 3},
		{constants.LogicalRight, 4},
	}
	for _, c := range cases {
		got := bd.Nav(c.direction)
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("Nav(%v) = %v, want [%v]", c.direction, got, c.want)
		}
	}

	if got := bd.Nav(constants.LogicalSelect); got != nil {
		t.Errorf("Nav(Select) = %v, want nil", got)
	}
}

func TestMenuDefFindButtonDef(t *testing.T) {
	def := testMenuDef()

	if got := def.FindButtonDef(testButtonB); got == nil || got.ID != testButtonB {
		t.Errorf("FindButtonDef = %+v", got)
	}
	if got := def.FindButtonDef(999); got != nil {
		t.Errorf("FindButtonDef(999) = %+v, want nil", got)
	}
}
