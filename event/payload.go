package event

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/quiz"
)

// NotificationPayload is a transient message
type NotificationPayload struct {
	Text     string
	Color    component.Color
	Duration time.Duration
}

// SoundPayload names a one-shot effect
type SoundPayload struct {
	Name string
}

// HeroDamagedPayload describes one damage application
type HeroDamagedPayload struct {
	Source       component.MinionType
	HealthLoss   int
	ShieldLoss   int
	Health       int
	ShieldHealth int
}

// MinionPayload references the minion an event is about
type MinionPayload struct {
	Minion *component.Minion
}

// QuizRequestPayload selects the quiz reward
type QuizRequestPayload struct {
	Kind quiz.Kind
}

// QuizCompletedPayload is the quiz outcome
type QuizCompletedPayload struct {
	Kind    quiz.Kind
	Correct int
	Total   int
	Earned  int
}

// ProgressPayload is the level/stage after a transition
type ProgressPayload struct {
	Level int
	Stage int
	Title string
	Color component.Color
}
