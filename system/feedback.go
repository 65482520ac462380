package system

import (
	"fmt"

	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/quiz"
)

// FeedbackSystem forwards gameplay events to the UI and audio sinks and keeps the HUD bars current
type FeedbackSystem struct{}

// NewFeedbackSystem creates the feedback stage
func NewFeedbackSystem() *FeedbackSystem {
	return &FeedbackSystem{}
}

func (s *FeedbackSystem) Name() string {
	return "feedback"
}

// Update pushes the hero's bars to the HUD
func (s *FeedbackSystem) Update(ctx *engine.GameContext) {
	h := ctx.Hero
	ctx.UI.SetHealth(float64(h.Health) / parameter.HeroMaxHealth)
	ctx.UI.SetShield(float64(h.ShieldHealth) / parameter.HeroMaxShield)
	ctx.UI.SetBolts(h.BoltCount)
}

func (s *FeedbackSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventNotification,
		event.EventSoundRequest,
		event.EventHeroDamaged,
		event.EventShieldDepleted,
		event.EventBoltsDepleted,
		event.EventOutOfBolts,
		event.EventBoltFired,
		event.EventMinionDefeated,
		event.EventProjectileFired,
		event.EventPickupCollected,
		event.EventQuizStarted,
		event.EventQuizCompleted,
		event.EventLevelChanged,
		event.EventStageChanged,
	}
}

func (s *FeedbackSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	switch ev.Type {
	case event.EventNotification:
		if p, ok := ev.Payload.(*event.NotificationPayload); ok {
			ctx.UI.Notify(p.Text, p.Color, p.Duration)
		}

	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundPayload); ok {
			ctx.Audio.Effect(p.Name)
		}

	case event.EventHeroDamaged:
		if p, ok := ev.Payload.(*event.HeroDamagedPayload); ok {
			if p.ShieldLoss > 0 {
				ctx.Audio.Effect(parameter.SoundShield)
			} else {
				ctx.Audio.Effect(parameter.SoundHit)
			}
		}

	case event.EventShieldDepleted:
		ctx.UI.Notify("Shield down!", parameter.ColorDanger, parameter.NotifyShort)

	case event.EventBoltsDepleted:
		ctx.UI.Notify("Out of bolts, solve to recharge", parameter.ColorWarn, parameter.NotifyShort)

	case event.EventOutOfBolts:
		ctx.UI.Notify("No bolts", parameter.ColorWarn, parameter.NotifyShort)
		ctx.Audio.Effect(parameter.SoundEmpty)

	case event.EventBoltFired:
		ctx.Audio.Effect(parameter.SoundBolt)

	case event.EventMinionDefeated:
		ctx.Audio.Effect(parameter.SoundDefeat)

	case event.EventProjectileFired:
		ctx.Audio.Effect(parameter.SoundShot)

	case event.EventPickupCollected:
		ctx.UI.Notify(fmt.Sprintf("+%d bolt", parameter.PickupBolts), parameter.ColorPickup, parameter.NotifyShort)
		ctx.Audio.Effect(parameter.SoundPickup)

	case event.EventQuizStarted:
		if p, ok := ev.Payload.(*event.QuizRequestPayload); ok {
			ctx.UI.SetTint(engine.Tint{Color: parameter.ColorQuiz, Strength: 0.25})
			title := "Recharge bolts"
			if p.Kind == quiz.KindShield {
				title = "Restore shield"
			}
			ctx.UI.Notify(title, parameter.ColorQuiz, parameter.NotifyShort)
		}

	case event.EventQuizCompleted:
		if p, ok := ev.Payload.(*event.QuizCompletedPayload); ok {
			ctx.UI.SetTint(engine.Tint{})
			reward := fmt.Sprintf("+%d bolts", p.Earned)
			if p.Kind == quiz.KindShield {
				reward = fmt.Sprintf("shield %d%%", ctx.Hero.ShieldHealth)
			}
			ctx.UI.Notify(fmt.Sprintf("%d/%d correct, %s", p.Correct, p.Total, reward), parameter.ColorQuiz, parameter.NotifyLong)
		}

	case event.EventLevelChanged, event.EventStageChanged:
		if p, ok := ev.Payload.(*event.ProgressPayload); ok {
			ctx.UI.SetProgress(p.Level, p.Stage)
			if p.Title != "" {
				ctx.UI.Notify(p.Title, p.Color, parameter.NotifyLong)
			}
		}
	}
}
