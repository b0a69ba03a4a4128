package router

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

const (
	screenPause Screen = iota
	screenOptions
)

const (
	buttonResume  constants.ButtonID = 10
	buttonOptions constants.ButtonID = 20
	buttonSound   constants.ButtonID = 30
)

// scriptedMenu yields a fixed sequence of selections, one per visit.
type scriptedMenu struct {
	selections []manicotti.MenuSelection
	visits     int
	inputs     []any
}

func (s *scriptedMenu) run(input any) (manicotti.MenuSelection, error) {
	s.inputs = append(s.inputs, input)
	sel := s.selections[s.visits]
	s.visits++
	return sel, nil
}

func TestRouter_RoutesOnSelections(t *testing.T) {
	pause := &scriptedMenu{selections: []manicotti.MenuSelection{
		{ButtonID: buttonOptions, Controller: 0},
		{ButtonID: buttonResume, Controller: 0},
	}}
	options := &scriptedMenu{selections: []manicotti.MenuSelection{
		{ButtonID: constants.ButtonIDCancel, Controller: 0},
	}}

	r := New()
	r.Register(screenPause, pause.run)
	r.Register(screenOptions, options.run)
	r.OnTransition(func(from Screen, sel manicotti.MenuSelection, stack *Stack) (Screen, any) {
		switch {
		case from == screenPause && sel.ButtonID == buttonOptions:
			stack.Push(from, "pause-input", sel.ButtonID)
			return screenOptions, nil
		case sel.ButtonID == constants.ButtonIDCancel:
			if entry := stack.Pop(); entry != nil {
				return entry.Screen, entry.Input
			}
			return ScreenExit, nil
		}
		return ScreenExit, nil
	})

	if err := r.Run(screenPause, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if pause.visits != 2 {
		t.Errorf("pause visited %d times, want 2", pause.visits)
	}
	if options.visits != 1 {
		t.Errorf("options visited %d times, want 1", options.visits)
	}
	// Back navigation restored the pushed input.
	if pause.inputs[1] != "pause-input" {
		t.Errorf("restored input = %v, want pause-input", pause.inputs[1])
	}
}

func TestRouter_StackRecordsFocusForRestore(t *testing.T) {
	s := NewStack()
	s.Push(screenPause, nil, buttonOptions)

	entry := s.Pop()
	if entry == nil || entry.Focus != buttonOptions {
		t.Fatalf("popped entry = %+v, want focus %v", entry, buttonOptions)
	}
	if s.Pop() != nil {
		t.Error("second pop should return nil")
	}
}

func TestRouter_CancelledMenuExitsCleanly(t *testing.T) {
	r := New()
	r.Register(screenPause, func(any) (manicotti.MenuSelection, error) {
		return manicotti.NoSelection, manicotti.ErrCancelled
	})
	r.OnTransition(func(Screen, manicotti.MenuSelection, *Stack) (Screen, any) {
		t.Fatal("transition must not run for a cancelled menu")
		return ScreenExit, nil
	})

	if err := r.Run(screenPause, nil); err != nil {
		t.Errorf("cancellation should exit cleanly, got %v", err)
	}
}

func TestRouter_MenuErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := New()
	r.Register(screenPause, func(any) (manicotti.MenuSelection, error) {
		return manicotti.NoSelection, boom
	})
	r.OnTransition(func(Screen, manicotti.MenuSelection, *Stack) (Screen, any) {
		return ScreenExit, nil
	})

	err := r.Run(screenPause, nil)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestRouter_UnregisteredScreen(t *testing.T) {
	r := New()
	r.OnTransition(func(Screen, manicotti.MenuSelection, *Stack) (Screen, any) {
		return ScreenExit, nil
	})

	if err := r.Run(screenOptions, nil); err == nil {
		t.Error("want error for unregistered screen")
	}
}

func TestRouter_NoTransitionFunc(t *testing.T) {
	r := New()
	r.Register(screenPause, func(any) (manicotti.MenuSelection, error) {
		return manicotti.NoSelection, nil
	})

	if err := r.Run(screenPause, nil); err == nil {
		t.Error("want error when no transition function is set")
	}
}

func TestStack_PeekAndClear(t *testing.T) {
	s := NewStack()
	if !s.IsEmpty() || s.Peek() != nil {
		t.Error("new stack should be empty")
	}

	s.Push(screenPause, nil, buttonResume)
	s.Push(screenOptions, nil, buttonSound)

	if got := s.Peek(); got == nil || got.Screen != screenOptions {
		t.Errorf("peek = %+v, want top entry", got)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("clear should empty the stack")
	}
}
