package core

// Action represents a key symbol delivered to the game, abstracted from
// physical key presses. Hosts translate their own key events into actions.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, W
	ActionDown               // Down arrow, S
	ActionLeft               // Left arrow, A
	ActionRight              // Right arrow, D
	ActionPauseToggle        // P - pause or resume
	ActionNewGame            // Space - start a new game
	ActionQuit               // Esc, Q, Ctrl+C
)

// Actions lists every bindable action in display order.
var Actions = []Action{
	ActionUp,
	ActionDown,
	ActionLeft,
	ActionRight,
	ActionPauseToggle,
	ActionNewGame,
	ActionQuit,
}

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
	case ActionPauseToggle:
		return "Pause"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement symbols.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
