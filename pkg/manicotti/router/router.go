package router

import (
	"fmt"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
)

// Screen is a type-safe identifier for menu screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenPause Screen = iota
//	    ScreenOptions
//	    ScreenQuitConfirm
//	)
type Screen int

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// MenuFunc drives one menu screen. It runs the menu's frame loop (setup,
// advance, drain) until a selection worth routing on arrives, and returns
// that selection. The input is screen-specific.
type MenuFunc func(input any) (manicotti.MenuSelection, error)

// TransitionFunc is called after each menu screen yields a selection, to
// determine the next screen. It receives the screen that just completed,
// the selection it yielded, and the navigation stack.
//
// Return (screen, input) to navigate to a new menu.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, sel manicotti.MenuSelection, stack *Stack) (next Screen, input any)

// Router manages menu-to-menu navigation with explicit data flow. Menus
// are registered with their driving functions, and a single transition
// function holds all routing logic in one place, keyed off the selection
// events the menus yield.
type Router struct {
	menus      map[Screen]MenuFunc
	transition TransitionFunc
	stack      *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		menus: make(map[Screen]MenuFunc),
		stack: NewStack(),
	}
}

// Register adds a menu screen to the router.
func (r *Router) Register(screen Screen, fn MenuFunc) *Router {
	r.menus[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation
// flow. This function is called after each menu screen yields a selection.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given screen with the given input. It
// continues until the transition function returns ScreenExit or a menu
// function fails. A manicotti.ErrCancelled from a menu function exits
// cleanly, treating cancellation as normal flow control.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.menus[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		sel, err := fn(currentInput)
		if err != nil {
			if manicotti.IsCancelled(err) {
				return nil
			}
			return fmt.Errorf("router: screen %d error: %w", current, err)
		}

		next, nextInput := r.transition(current, sel, r.stack)

		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
