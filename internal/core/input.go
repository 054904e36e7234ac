package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLift           // Space, Up, W, mouse press - give the plane upward velocity
	ActionPause          // P, Escape - pause/resume
	ActionRestart        // R - restart after game over
	ActionConfirm        // Enter - start a run from the intro screen
	ActionBack           // B - return to the intro screen after game over
	ActionLeft           // Left, H - previous difficulty
	ActionRight          // Right, L - next difficulty
	ActionEasy           // 1 - select easy
	ActionNormal         // 2 - select normal
	ActionHard           // 3 - select hard
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLift:
		return "Lift"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionEasy:
		return "Easy"
	case ActionNormal:
		return "Normal"
	case ActionHard:
		return "Hard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one display tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
