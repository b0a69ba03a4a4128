package router

import "github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"

// StackEntry is one frame of navigation history: the screen, the input it
// was called with, and the button that held focus when the user navigated
// away, so returning to the menu can restore its focus.
type StackEntry struct {
	Screen Screen
	Input  any
	Focus  constants.ButtonID
}

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new menu.
func (s *Stack) Push(screen Screen, input any, focus constants.ButtonID) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Input:  input,
		Focus:  focus,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
