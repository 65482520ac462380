package system

import (
	"math"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/physics"
)

// MinionSystem runs the minion AI: bobbing, facing, ranged and melee attacks
// Each check is independent; a minion may shoot and strike in the same frame
type MinionSystem struct{}

// NewMinionSystem creates the minion AI stage
func NewMinionSystem() *MinionSystem {
	return &MinionSystem{}
}

func (s *MinionSystem) Name() string {
	return "minion"
}

func (s *MinionSystem) Update(ctx *engine.GameContext) {
	h := ctx.Hero
	t := ctx.Elapsed()
	// Attacks pause while a quiz holds the hero
	attacks := !ctx.State.MovementLocked && !h.Dead && !h.Falling

	for _, m := range ctx.State.Minions {
		if !m.Combatant() {
			continue
		}
		m.BobOffset = parameter.BobAmplitude * math.Sin(t*parameter.BobFrequency+m.X*parameter.BobPhasePerUnit)
		m.FacingRight = h.X > m.X

		if !attacks {
			continue
		}
		if CanFire(ctx, m) {
			FireProjectile(ctx, m)
		}
		if CanStrike(ctx, m) {
			m.LastHit = ctx.Now
			ApplyHeroDamage(ctx, m.Type)
		}
	}
}

// CanFire reports whether m is eligible for a ranged attack this frame
func CanFire(ctx *engine.GameContext, m *component.Minion) bool {
	if !m.CanShoot() {
		return false
	}
	p := m.Type.Profile()
	if ctx.Now.Sub(m.LastProjectile) < p.RangedCooldown {
		return false
	}
	return physics.Distance(m.X, m.Y, ctx.Hero.X, ctx.Hero.Y) < p.RangedRange
}

// CanStrike reports whether m is eligible for a melee attack this frame
func CanStrike(ctx *engine.GameContext, m *component.Minion) bool {
	h := ctx.Hero
	if math.Abs(h.X-m.X) >= parameter.MeleeRange || math.Abs(h.Y-m.Y) > parameter.MeleeVerticalReach {
		return false
	}
	return m.LastHit.IsZero() || ctx.Now.Sub(m.LastHit) >= m.Type.Profile().MeleeCooldown
}
