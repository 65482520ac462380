package system

import (
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// LifecycleSystem turns a fall or death into a delayed session restart
type LifecycleSystem struct{}

// NewLifecycleSystem creates the restart handler
func NewLifecycleSystem() *LifecycleSystem {
	return &LifecycleSystem{}
}

func (s *LifecycleSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventHeroFell,
		event.EventHeroDied,
	}
}

func (s *LifecycleSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	if ctx.RestartPending() {
		return
	}
	switch ev.Type {
	case event.EventHeroFell:
		ctx.Notify("You fell! Restarting...", parameter.ColorDanger, parameter.RestartDelayFall)
		ctx.Audio.Effect(parameter.SoundFall)
		ctx.RequestRestart(parameter.RestartDelayFall)
	case event.EventHeroDied:
		ctx.Notify("Defeated! Restarting...", parameter.ColorDanger, parameter.RestartDelayDeath)
		ctx.Audio.Effect(parameter.SoundDeath)
		ctx.RequestRestart(parameter.RestartDelayDeath)
	}
}
