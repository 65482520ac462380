// Package system holds the per-frame gameplay stages and the event handlers that react to them
package system

import (
	"sync/atomic"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/physics"
	"github.com/lixenwraith/rooftop-fighter/status"
)

// AttackResult is the outcome of one attack attempt
type AttackResult uint8

const (
	AttackNone AttackResult = iota
	AttackCooldown
	AttackNoTarget
	AttackOutOfBolts
	AttackFired
)

// CombatSystem resolves the hero's bolt attack and counts down invulnerability
type CombatSystem struct {
	// emptyNotified suppresses repeated out-of-bolts feedback while attack stays held
	emptyNotified bool

	statFired *atomic.Int64
}

// NewCombatSystem creates the combat stage
func NewCombatSystem(ctx *engine.GameContext) *CombatSystem {
	return &CombatSystem{
		statFired: ctx.Status.Ints.Get(status.KeyBoltsFired),
	}
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Update(ctx *engine.GameContext) {
	ctx.Hero.TickInvulnerability(ctx.Delta)
	if !ctx.Input.Attack {
		s.emptyNotified = false
		return
	}
	if s.Attack(ctx) == AttackFired {
		s.statFired.Add(1)
	}
}

// Attack fires a bolt at the nearest minion in range
// An empty bolt count fires nothing and leaves all state but the feedback flag untouched
func (s *CombatSystem) Attack(ctx *engine.GameContext) AttackResult {
	h := ctx.Hero
	if !h.HasBoltAttack || h.Dead || h.Falling || ctx.State.MovementLocked {
		return AttackNone
	}
	if !h.LastAttack.IsZero() && ctx.Now.Sub(h.LastAttack) < parameter.AttackCooldown {
		return AttackCooldown
	}

	target := NearestMinion(ctx.State.Minions, h.X, h.Y, parameter.AttackRange)
	if target == nil {
		return AttackNoTarget
	}

	if h.BoltCount == 0 {
		if !s.emptyNotified {
			s.emptyNotified = true
			ctx.Emit(event.EventOutOfBolts, nil)
		}
		return AttackOutOfBolts
	}

	h.LastAttack = ctx.Now
	h.BoltCount--
	h.FacingRight = target.X >= h.X
	SpawnBoltShot(ctx, target)
	ctx.Emit(event.EventBoltFired, &event.MinionPayload{Minion: target})
	DamageMinion(ctx, target, parameter.BoltDamage)

	if h.BoltCount == 0 && len(ctx.State.ActiveMinions()) > 0 {
		ctx.Emit(event.EventBoltsDepleted, nil)
	}
	return AttackFired
}

// NearestMinion returns the closest combatant strictly within maxRange, first found on ties
func NearestMinion(minions []*component.Minion, x, y, maxRange float64) *component.Minion {
	var best *component.Minion
	bestDist := maxRange
	for _, m := range minions {
		if !m.Combatant() {
			continue
		}
		d := physics.Distance(x, y, m.X, m.Y)
		if d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best
}

// DamageMinion subtracts dmg from a combatant and defeats it at zero health
// Returns false when the minion was already out of combat
func DamageMinion(ctx *engine.GameContext, m *component.Minion, dmg int) bool {
	if !m.Combatant() {
		return false
	}
	m.Health -= dmg
	if m.Health <= 0 {
		DefeatMinion(ctx, m)
	}
	return true
}

// DefeatMinion removes a minion from combat exactly once
// Its scene node is detached, its tasks and projectiles are cancelled and the fight counter advances
func DefeatMinion(ctx *engine.GameContext, m *component.Minion) {
	if m.Defeated {
		return
	}
	m.Defeated = true
	m.Active = false
	m.Health = max(0, m.Health)
	m.Node.Visible = false
	ctx.Scene.Remove(m.Node)
	m.Tasks.Cancel()
	DespawnProjectilesOf(ctx, m)

	ctx.State.MinionsFought++
	ctx.Status.Ints.Get(status.KeyMinionsDefeat).Add(1)
	ctx.Emit(event.EventMinionDefeated, &event.MinionPayload{Minion: m})
	ctx.Logf("minion %s (%s) defeated, %d/%d", shortID(m.ID), m.Type, ctx.State.MinionsFought, ctx.State.TotalMinions)
}

// DamageResult describes one damage application on the hero
type DamageResult struct {
	Applied    bool
	ShieldLoss int
	HealthLoss int
	Depleted   bool
	Killed     bool
}

// ApplyHeroDamage applies a hit from a minion of type t
// The shield absorbs the type's percentage while up; otherwise health takes the type's damage
// Any applied hit opens a damage invulnerability window
func ApplyHeroDamage(ctx *engine.GameContext, t component.MinionType) DamageResult {
	h := ctx.Hero
	if h.IsInvulnerable || h.Dead {
		return DamageResult{}
	}

	p := t.Profile()
	res := DamageResult{Applied: true}
	if h.ShieldHealth > 0 {
		before := h.ShieldHealth
		h.SetShield(before - p.ShieldPercent)
		res.ShieldLoss = before - h.ShieldHealth
		res.Depleted = h.ShieldHealth == 0
	} else {
		before := h.Health
		h.Health = max(0, before-p.Damage)
		res.HealthLoss = before - h.Health
	}

	h.LastHit = ctx.Now
	h.GrantInvulnerability(component.InvulnerableDamage, parameter.HitInvulnerability)
	ctx.Status.Ints.Get(status.KeyDamageTaken).Add(int64(res.ShieldLoss + res.HealthLoss))

	ctx.Emit(event.EventHeroDamaged, &event.HeroDamagedPayload{
		Source:       t,
		HealthLoss:   res.HealthLoss,
		ShieldLoss:   res.ShieldLoss,
		Health:       h.Health,
		ShieldHealth: h.ShieldHealth,
	})
	if res.Depleted {
		ctx.Emit(event.EventShieldDepleted, nil)
	}
	if h.Health == 0 {
		h.Dead = true
		res.Killed = true
		ctx.Emit(event.EventHeroDied, nil)
	}
	return res
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
