package input

// Action is a semantic binding target
type Action uint8

const (
	ActionNone Action = iota

	// Held gameplay actions, sampled into component.Input
	ActionLeft
	ActionRight
	ActionJump
	ActionDodge
	ActionAttack

	// Quiz answers select a choice directly
	ActionAnswer1
	ActionAnswer2
	ActionAnswer3
	ActionAnswer4

	// System actions
	ActionQuit
	ActionPause
	ActionToggleMute
	ActionToggleDebug
	ActionResize
)

// Held reports whether the action is level-triggered gameplay input
func (a Action) Held() bool {
	return a >= ActionLeft && a <= ActionAttack
}

// Answer returns the zero-based quiz choice of an answer action
func (a Action) Answer() (int, bool) {
	if a >= ActionAnswer1 && a <= ActionAnswer4 {
		return int(a - ActionAnswer1), true
	}
	return 0, false
}

// Intent is the result of one processed event
type Intent struct {
	Action Action

	// Repeat is set when a held action was already active
	Repeat bool
}
