package core

// Action represents a semantic game action, abstracted from physical key
// presses. The aim actions behave as held directions: each frame that
// carries one contributes a single tick of angular movement.
type Action int

const (
	ActionNone      Action = iota
	ActionYawLeft          // A, Left arrow - aim left
	ActionYawRight         // D, Right arrow - aim right
	ActionPitchUp          // W, Up arrow - aim up
	ActionPitchDown        // S, Down arrow - aim down
	ActionCharge           // Space - start drawing, or release if already drawing
	ActionReload           // R - refill the quiver
	ActionDiffEasy         // 1 - switch to easy target distance
	ActionDiffNormal       // 2 - switch to normal target distance
	ActionDiffHard         // 3 - switch to hard target distance
	ActionQuit             // Q, Ctrl+C - exit the session
	ActionBack             // B, Escape - back to menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionYawLeft:
		return "YawLeft"
	case ActionYawRight:
		return "YawRight"
	case ActionPitchUp:
		return "PitchUp"
	case ActionPitchDown:
		return "PitchDown"
	case ActionCharge:
		return "Charge"
	case ActionReload:
		return "Reload"
	case ActionDiffEasy:
		return "DifficultyEasy"
	case ActionDiffNormal:
		return "DifficultyNormal"
	case ActionDiffHard:
		return "DifficultyHard"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
