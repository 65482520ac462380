package input

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
)

// HeldState tracks the last press of each held action
// An action stays held for the hold window after its latest press
type HeldState struct {
	window  time.Duration
	pressed map[Action]time.Time
}

// NewHeldState creates an empty state with the given hold window
func NewHeldState(window time.Duration) *HeldState {
	return &HeldState{
		window:  window,
		pressed: make(map[Action]time.Time, 8),
	}
}

// Press records a press at now and reports whether the action was already held
func (s *HeldState) Press(a Action, now time.Time) bool {
	held := s.Held(a, now)
	s.pressed[a] = now
	return held
}

// Held reports whether a is inside its hold window at now
func (s *HeldState) Held(a Action, now time.Time) bool {
	last, ok := s.pressed[a]
	return ok && now.Sub(last) < s.window
}

// Release drops an action immediately
func (s *HeldState) Release(a Action) {
	delete(s.pressed, a)
}

// Reset releases every action
func (s *HeldState) Reset() {
	clear(s.pressed)
}

// Sample builds the per-frame input snapshot at now
func (s *HeldState) Sample(now time.Time) component.Input {
	return component.Input{
		Left:   s.Held(ActionLeft, now),
		Right:  s.Held(ActionRight, now),
		Jump:   s.Held(ActionJump, now),
		Dodge:  s.Held(ActionDodge, now),
		Attack: s.Held(ActionAttack, now),
	}
}
