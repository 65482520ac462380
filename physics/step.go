// Package physics moves the hero: walking, jumping, dodging, gravity, platform landing and fall detection
package physics

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// StepResult reports what happened during one physics step
type StepResult struct {
	Skipped bool
	Jumped  bool
	Boosted bool
	Dodged  bool
	Landed  bool
	Blocked bool
	Fell    bool
}

// Step advances the hero by one frame using the context's time scale
// Nothing moves while movement is locked or the hero is falling or dead
func Step(ctx *engine.GameContext, in component.Input) StepResult {
	h := ctx.Hero
	st := ctx.State
	if st.MovementLocked || h.Falling || h.Dead {
		return StepResult{Skipped: true}
	}

	var res StepResult
	ts := ctx.TimeScale
	wasGrounded := h.Grounded

	res.Dodged = updateDodge(h, in, ctx.Now, ctx.Delta)

	// Horizontal
	dir := heldDirection(in)
	switch {
	case h.IsDodging:
		h.VX = h.DodgeDir * parameter.DodgeSpeed * ts
	case dir != 0:
		h.VX = dir * parameter.HeroBaseSpeed * ts
		h.FacingRight = dir > 0
	default:
		h.VX *= parameter.HeroHorizontalDamping
	}

	// Jump
	if in.Jump && h.Grounded {
		if InBoostZone(h, st.Platforms) {
			h.VY = parameter.BoostJumpVelocity
			h.VX += facing(h) * parameter.BoostJumpPush
			res.Boosted = true
		} else {
			h.VY = parameter.JumpVelocity
		}
		h.Grounded = false
		res.Jumped = true
	}

	if !h.Grounded {
		h.VY -= parameter.Gravity * ts
	}

	h.X += h.VX
	h.Y += h.VY

	if st.CurrentLevel == 3 && !st.AllGunmenDefeated && ctx.Script != nil {
		res.Blocked = ClampWall(h, ctx.Script.Wall.X, ctx.Script.Wall.Thickness)
	}

	if p := Landing(h, st.Platforms); p != nil {
		h.Y = p.Height + parameter.HeroFootOffset
		h.VY = 0
		h.Grounded = true
		res.Landed = !wasGrounded
	} else {
		h.Grounded = false
	}

	if !h.Grounded && h.Y < parameter.FallThresholdY && !h.Falling {
		h.Falling = true
		res.Fell = true
		ctx.Emit(event.EventHeroFell, nil)
	}

	return res
}

// updateDodge ends an expired dodge or starts a new one; returns true when a dodge started
func updateDodge(h *component.Hero, in component.Input, now time.Time, dt time.Duration) bool {
	if h.IsDodging {
		h.DodgeRemaining -= dt
		if h.DodgeRemaining <= 0 {
			h.IsDodging = false
			h.DodgeRemaining = 0
		}
		return false
	}

	if !in.Dodge || !h.HasSmokeAttack {
		return false
	}
	if !h.LastDodge.IsZero() && now.Sub(h.LastDodge) < h.DodgeCooldown {
		return false
	}

	dir := heldDirection(in)
	if dir == 0 {
		dir = facing(h)
	}
	h.IsDodging = true
	h.DodgeDir = dir
	h.DodgeRemaining = h.DodgeDuration
	h.LastDodge = now
	h.GrantInvulnerability(component.InvulnerableDamage, h.DodgeDuration)
	return true
}

func heldDirection(in component.Input) float64 {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}

func facing(h *component.Hero) float64 {
	if h.FacingRight {
		return 1
	}
	return -1
}
