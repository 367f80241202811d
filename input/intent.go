package input

// Action discriminates what a key does in the walkthrough
type Action uint8

const (
	ActionNone Action = iota

	// Movement, held
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight

	// Look
	ActionTurnLeft
	ActionTurnRight
	ActionEngage
	ActionDisengage

	// System
	ActionQuit
	ActionVoice
	ActionMute
)

// Movement reports whether the action drives one of the four hold flags
func (a Action) Movement() bool {
	return a >= ActionForward && a <= ActionRight
}

// Turn reports whether the action rotates the look direction
func (a Action) Turn() bool {
	return a == ActionTurnLeft || a == ActionTurnRight
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}
