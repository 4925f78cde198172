package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionRestart        // R
	ActionQuit           // Q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four moves.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame carries the actions of a single input event.
// A key press yields one action; an unmapped key yields an empty frame,
// which still counts as an event.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
