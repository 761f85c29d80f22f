package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move left (held)
	ActionRight            // D, Right arrow - move right (held)
	ActionDash             // Space, Shift - dash in the current direction
	ActionDashLeft         // Q - dash left
	ActionDashRight        // E - dash right
	ActionUp               // W, Up arrow - menu navigation
	ActionDown             // S, Down arrow - menu navigation
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // Escape - go back to menu
	ActionRestart          // R key - restart after game over
	ActionQuit             // Ctrl+C - exit
	ActionPause            // P - pause/unpause
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
	case ActionDash:
		return "Dash"
	case ActionDashLeft:
		return "DashLeft"
	case ActionDashRight:
		return "DashRight"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// InputFrame represents the input state during one simulation tick.
// Held actions (Left/Right) and one-shot actions (Dash, Pause) share the same set.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
