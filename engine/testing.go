package engine

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/level"
)

// TestEpoch is the start time of test contexts
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGameContext creates a deterministic context with discarding sinks
// A nil script selects the embedded default; the hero starts grounded in gameplay with movement unlocked
func NewTestGameContext(script *level.Script) *GameContext {
	if script == nil {
		s, err := level.Default()
		if err != nil {
			panic(err)
		}
		script = s
	}
	ctx := NewGameContext(ContextConfig{
		SessionID: "test-session",
		Script:    script,
		Seed:      1,
		Start:     TestEpoch,
	})
	ctx.State.Phase = component.PhaseGameplay
	ctx.State.MovementLocked = false
	ctx.Hero.Grounded = true
	return ctx
}

// Advance runs BeginFrame for a frame of length dt after the current frame
func (c *GameContext) Advance(dt time.Duration) {
	c.BeginFrame(c.Now.Add(dt), dt)
}
