// Package router provides menu-to-menu navigation with explicit data flow.
//
// Each screen is a function that drives one menu until it yields a
// selection; a centralized transition function routes on that selection.
// This keeps all flow logic in one place and avoids hidden global state.
//
// # Basic Usage
//
//	const (
//	    ScreenPause Screen = iota
//	    ScreenOptions
//	)
//
//	r := router.New()
//
//	r.Register(ScreenPause, func(input any) (manicotti.MenuSelection, error) {
//	    return runMenu(pauseDef), nil // setup, advance, drain until a selection
//	})
//
//	r.Register(ScreenOptions, func(input any) (manicotti.MenuSelection, error) {
//	    return runMenu(optionsDef), nil
//	})
//
//	r.OnTransition(func(from router.Screen, sel manicotti.MenuSelection, stack *router.Stack) (router.Screen, any) {
//	    switch sel.ButtonID {
//	    case ButtonOptions:
//	        stack.Push(from, nil, sel.ButtonID)
//	        return ScreenOptions, nil
//	    case constants.ButtonIDCancel:
//	        if entry := stack.Pop(); entry != nil {
//	            return entry.Screen, entry.Input
//	        }
//	        return router.ScreenExit, nil
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	r.Run(ScreenPause, nil)
//
// # Focus Restoration
//
// Stack entries record the button that held focus when the user navigated
// forward. When popping back, pass entry.Focus to Menu.SetFocus after
// Setup so the menu reopens on the button the user left from.
package router
