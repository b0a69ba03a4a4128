// Package manicotti provides a focus-driven menu overlay engine for
// real-time SDL applications on embedded Linux devices.
//
// A Menu owns interactive buttons and decorative images described by a
// TOML definition, tracks which button holds directional focus, translates
// controller-style input into focus transitions, and aggregates touch and
// controller selections into a single event queue the host drains once per
// frame.
package manicotti

import (
	"log/slog"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle   string                 // Window title displayed in windowed mode
	WindowOptions internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	TouchScreen   *bool                  // Touch-variant texture policy; nil = autodetect from SDL
	AssetRoot     string                 // Directory menu asset names resolve against
	LogPath       string                 // Full path for the log file including filename
	Bundle        *i18n.Bundle           // Optional message bundle for button labels
	Languages     []string               // Language preference order for label resolution
}

var (
	touchScreen     bool
	materialManager *MaterialManager
)

// Init initializes the SDL subsystems, window, and input handling.
// Must be called before any other manicotti functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.Init(options.WindowTitle, options.WindowOptions)

	// The touch-vs-standard asset policy is resolved once here, not
	// re-queried per frame.
	if options.TouchScreen != nil {
		touchScreen = *options.TouchScreen
	} else if os.Getenv(constants.TouchScreenEnvVar) != "" {
		touchScreen = os.Getenv(constants.TouchScreenEnvVar) != "0"
	} else {
		touchScreen = internal.HasTouchDevice()
	}

	SetLocalization(options.Bundle, options.Languages...)

	materialManager = NewMaterialManager(options.AssetRoot, internal.GetWindow().Renderer)
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if materialManager != nil {
		materialManager.Destroy()
		materialManager = nil
	}
	if p := internal.GetInputProcessor(); p != nil {
		p.CloseControllers()
	}
	internal.SDLCleanup()
}

// TouchScreenCapability reports whether touch-variant textures are
// preferred when a definition provides them.
func TouchScreenCapability() bool {
	return touchScreen
}

// SetTouchScreenCapability overrides the resolved capability flag. Hosts
// and tests may call this without going through Init.
func SetTouchScreenCapability(touch bool) {
	touchScreen = touch
}

// GetMaterialManager returns the framework's asset manager.
func GetMaterialManager() *MaterialManager {
	return materialManager
}

// GetWindow returns the underlying SDL window wrapper for advanced use.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// GetInputProcessor returns the framework input state for Menu.AdvanceFrame.
func GetInputProcessor() *internal.InputProcessor {
	return internal.GetInputProcessor()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}
