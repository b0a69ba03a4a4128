package manicotti_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

const (
	buttonPlay constants.ButtonID = 10
	buttonQuit constants.ButtonID = 20
)

// stubAssets is a minimal asset manager for the example; real hosts use
// the SDL-backed MaterialManager from Init.
type stubAssets struct{}

func (stubAssets) FindMaterial(name string) *manicotti.Material {
	return &manicotti.Material{Name: name}
}

func (stubAssets) FindShader(name string) *manicotti.Shader {
	return &manicotti.Shader{Name: name}
}

func (stubAssets) LoadMaterial(string) {}

func (stubAssets) LoadShader(string) {}

// Example shows one frame of the host loop: advance, feed controller
// input, drain the queue until the sentinel comes back.
func Example() {
	def := &manicotti.MenuDef{
		CanonicalWindowHeight: 720,
		StartingSelection:     buttonPlay,
		DefaultShader:         "shaders/ui",
		DefaultInactiveShader: "shaders/ui_grey",
		Buttons: []manicotti.ButtonDef{
			{ID: buttonPlay, StartsActive: true, NavDown: []constants.ButtonID{buttonQuit}},
			{ID: buttonQuit, StartsActive: true, NavUp: []constants.ButtonID{buttonPlay}},
		},
	}

	menu := &manicotti.Menu{}
	menu.LoadAssets(def, stubAssets{})
	menu.Setup(def, stubAssets{})

	menu.AdvanceFrame(16*time.Millisecond, nil, 1280, 720)
	menu.HandleControllerInput(constants.LogicalDown, 0)
	menu.HandleControllerInput(constants.LogicalSelect, 0)

	for sel := menu.GetRecentSelection(); !sel.IsNone(); sel = menu.GetRecentSelection() {
		fmt.Printf("selected %d by %v\n", sel.ButtonID, sel.Controller)
	}
	fmt.Println("focus:", menu.GetFocus() == buttonQuit)

	// Output:
	// selected 20 by Controller
	// focus: true
}
