package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends translate keys into actions; games only ever see actions.
type Action uint8

const (
	ActionNone    Action = iota
	ActionStart          // Enter - begin a session from the title screen
	ActionJump           // Space, W, Up - jump while running
	ActionRestart        // R - new session after game over
	ActionPause          // P - pause/unpause a running session
	ActionBack           // B, Escape - return to the menu
	ActionQuit           // Q, Ctrl+C - exit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionStart:   "Start",
	ActionJump:    "Jump",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the triggered actions, e.g. "Start+Jump".
func (f InputFrame) String() string {
	if f.Empty() {
		return "None"
	}
	var names []string
	for a := ActionStart; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "+")
}
