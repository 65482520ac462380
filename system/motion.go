package system

import (
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/physics"
)

// MotionSystem runs the hero physics step with the frame's input
type MotionSystem struct {
	last physics.StepResult
}

// NewMotionSystem creates the physics stage
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Update(ctx *engine.GameContext) {
	s.last = physics.Step(ctx, ctx.Input)
	switch {
	case s.last.Boosted:
		s.sound(ctx, parameter.SoundBoost)
	case s.last.Jumped:
		s.sound(ctx, parameter.SoundJump)
	}
	if s.last.Dodged {
		s.sound(ctx, parameter.SoundDodge)
	}
}

// Last returns the result of the most recent step
func (s *MotionSystem) Last() physics.StepResult {
	return s.last
}

func (s *MotionSystem) sound(ctx *engine.GameContext, name string) {
	ctx.Emit(event.EventSoundRequest, &event.SoundPayload{Name: name})
}
