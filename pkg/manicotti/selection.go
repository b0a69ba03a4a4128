package manicotti

import "github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"

// MenuSelection is one queued user action: the widget it landed on (or a
// sentinel) and the input source that produced it. Touch-originated
// triggers and controller commands merge into a single FIFO in call order.
type MenuSelection struct {
	ButtonID   constants.ButtonID
	Controller constants.ControllerID
}

// NoSelection is returned by Menu.GetRecentSelection when the queue is
// empty. Callers must treat it as "no event", not as a real selection.
var NoSelection = MenuSelection{
	ButtonID:   constants.ButtonIDUndefined,
	Controller: constants.ControllerUndefined,
}

// IsNone returns true for the empty-queue sentinel.
func (s MenuSelection) IsNone() bool {
	return s == NoSelection
}
