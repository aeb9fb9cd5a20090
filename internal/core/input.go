package core

import (
	"fmt"
	"strings"
)

// Direction is the abstract discrete movement signal accepted by the engine.
// Mapping physical input (keys, touch zones) to a Direction is the front
// end's job.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase name used in logs and config files.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Sign returns +1 for rightward movement and -1 for leftward movement.
// Vertical directions return 0.
func (d Direction) Sign() int {
	switch d {
	case DirRight:
		return 1
	case DirLeft:
		return -1
	default:
		return 0
	}
}

// Vertical reports whether the direction changes the row.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// ParseDirection accepts full names ("left") and single letters ("l").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("unknown direction %q", s)
}

// Action represents a semantic front-end action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionRestart        // R key - restart after game over or win
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Direction converts a movement action into an engine direction.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirUp, false
}

// InputFrame collects the input for a single simulation tick.
// Movement is kept in press order; other actions are flags.
type InputFrame struct {
	Actions map[Action]bool
	Moves   []Direction
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action. Movement actions are also queued as moves.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if dir, ok := a.Direction(); ok {
		f.Moves = append(f.Moves, dir)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and moves for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Moves = f.Moves[:0]
}
