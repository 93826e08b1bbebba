package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move paddle up
	ActionDown              // S, Down arrow - move paddle down
	ActionPause             // P - pause/unpause
	ActionRestart           // Space, R - play again after game over
	ActionBestOf3           // 3 - replay as best of 3
	ActionBestOf5           // 5 - replay as best of 5
	ActionBestOf7           // 7 - replay as best of 7
	ActionResults           // Tab - toggle results table
	ActionScreenshot        // Ctrl+S - save screen to a file
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBestOf3:
		return "BestOf3"
	case ActionBestOf5:
		return "BestOf5"
	case ActionBestOf7:
		return "BestOf7"
	case ActionResults:
		return "Results"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
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
