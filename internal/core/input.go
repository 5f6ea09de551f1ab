package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - thrust up
	ActionDown           // S, Down arrow - thrust down
	ActionLeft           // A, Left arrow - thrust left
	ActionRight          // D, Right arrow - thrust right
	ActionFire           // Space - fire the plasma gun
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Directions folds the movement actions into unit directions.
// Opposite keys pressed in the same frame cancel out.
func (f InputFrame) Directions() (rowDir, colDir int) {
	if f.Has(ActionUp) {
		rowDir--
	}
	if f.Has(ActionDown) {
		rowDir++
	}
	if f.Has(ActionLeft) {
		colDir--
	}
	if f.Has(ActionRight) {
		colDir++
	}
	return rowDir, colDir
}

// ReadControls returns the pending steering and fire intent and consumes it.
// It never blocks; with nothing pending it reports neutral input.
func (f *InputFrame) ReadControls() (rowDir, colDir int, fire bool) {
	rowDir, colDir = f.Directions()
	fire = f.Has(ActionFire)

	delete(f.Actions, ActionUp)
	delete(f.Actions, ActionDown)
	delete(f.Actions, ActionLeft)
	delete(f.Actions, ActionRight)
	delete(f.Actions, ActionFire)

	return rowDir, colDir, fire
}
