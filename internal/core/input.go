package core

// Action is a logical button, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // move one column left, auto-repeats
	ActionRight              // move one column right, auto-repeats
	ActionSoftDrop           // move one row down, auto-repeats
	ActionHardDrop           // drop to the ghost and lock
	ActionRotateRight        // rotate clockwise
	ActionRotateLeft         // rotate counter-clockwise
	ActionHold               // swap with the hold slot
	ActionPause              // pause/unpause
	ActionRestart            // start over after the game ended
	ActionQuit               // leave the game
	ActionConfirm            // accept a menu choice
	ActionBack               // return to the previous screen

	numActions
)

// GameActions are the actions the rules engine consumes every tick.
var GameActions = []Action{
	ActionLeft, ActionRight, ActionSoftDrop, ActionHardDrop,
	ActionRotateRight, ActionRotateLeft, ActionHold,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateRight:
		return "RotateRight"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame is the raw button state for one simulation tick: an action is
// set when its button is asserted during the tick. Edge and repeat semantics
// are layered on top with signals.
type InputFrame struct {
	held [numActions]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf builds a frame with the given actions asserted.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set asserts an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < numActions {
		f.held[a] = true
	}
}

// Has reports whether the action is asserted this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= numActions {
		return false
	}
	return f.held[a]
}

// Clear releases every action.
func (f *InputFrame) Clear() {
	f.held = [numActions]bool{}
}

// Empty reports whether no action is asserted.
func (f InputFrame) Empty() bool {
	return f.held == [numActions]bool{}
}

// Actions returns the asserted actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < numActions; a++ {
		if f.held[a] {
			out = append(out, a)
		}
	}
	return out
}
