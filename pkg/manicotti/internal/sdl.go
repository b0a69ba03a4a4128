package internal

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Init brings up the SDL subsystems and window the menu overlay needs.
func Init(title string, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO | img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		GetInternalLogger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	window = initWindow(title, winOpts)
}

// SDLCleanup releases the window and shuts SDL down.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	img.Quit()
	sdl.Quit()
	CloseLogger()
}

// HasTouchDevice reports whether SDL sees at least one touch input device.
// Used to autodetect the touch-vs-standard texture variant policy.
func HasTouchDevice() bool {
	return sdl.GetNumTouchDevices() > 0
}
