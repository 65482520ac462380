package system

import (
	"slices"
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/physics"
)

// boltShotArrival is the distance at which a bolt shot visual counts as arrived
const boltShotArrival = 0.5

// SpawnBoltShot launches the visual of a bolt travelling from the hero to target
// Damage is applied on fire; the shot is cosmetic and owned by the level group,
// so a level change detaches a shot still in flight
func SpawnBoltShot(ctx *engine.GameContext, target *component.Minion) {
	h := ctx.Hero
	n := component.NewNode(component.NodeBoltShot, h.X, h.Y, '*', parameter.ColorShot)
	ctx.Scene.Add(n)
	release := ctx.Level.OnCancel(func() { ctx.Scene.Remove(n) })

	tx, ty := target.X, target.Y+target.BobOffset
	ctx.Scheduler.Every(ctx.Level, func(now time.Time, dt time.Duration) bool {
		d := physics.Distance(n.X, n.Y, tx, ty)
		step := parameter.BoltShotSpeed * dt.Seconds()
		if d <= boltShotArrival || step >= d {
			release()
			ctx.Scene.Remove(n)
			return true
		}
		n.X += (tx - n.X) / d * step
		n.Y += (ty - n.Y) / d * step
		return false
	})
}

// FireProjectile launches a shot from m aimed at the hero's current position
// The flight task belongs to the minion's group so defeating the minion stops it
func FireProjectile(ctx *engine.GameContext, m *component.Minion) *component.Projectile {
	h := ctx.Hero
	p := m.Type.Profile()
	ox, oy := m.X, m.Y+m.BobOffset

	dx, dy := h.X-ox, h.Y-oy
	d := physics.Distance(ox, oy, h.X, h.Y)
	if d == 0 {
		dx, d = 1, 1
	}

	pr := &component.Projectile{
		Owner: m,
		X:     ox,
		Y:     oy,
		VX:    dx / d * parameter.ProjectileSpeed,
		VY:    dy / d * parameter.ProjectileSpeed,
	}
	pr.Node = component.NewNode(component.NodeProjectile, ox, oy, p.ProjectileGlyph, component.Color(p.ProjectileColor))
	ctx.State.Projectiles = append(ctx.State.Projectiles, pr)
	ctx.Scene.Add(pr.Node)
	m.LastProjectile = ctx.Now
	ctx.Emit(event.EventProjectileFired, &event.MinionPayload{Minion: m})

	ctx.Scheduler.Every(m.Tasks, func(now time.Time, dt time.Duration) bool {
		return advanceProjectile(ctx, pr, dt)
	})
	return pr
}

// advanceProjectile moves a projectile and resolves its hit; returns true once it is gone
func advanceProjectile(ctx *engine.GameContext, pr *component.Projectile, dt time.Duration) bool {
	if pr.Done {
		return true
	}
	sec := dt.Seconds()
	pr.X += pr.VX * sec
	pr.Y += pr.VY * sec
	pr.Traveled += parameter.ProjectileSpeed * sec
	pr.Node.X, pr.Node.Y = pr.X, pr.Y

	h := ctx.Hero
	if !h.Dead && !h.Falling && physics.Distance(pr.X, pr.Y, h.X, h.Y) < parameter.ProjectileHitRadius {
		ApplyHeroDamage(ctx, pr.Owner.Type)
		DespawnProjectile(ctx, pr)
		return true
	}
	if pr.Traveled > parameter.ProjectileMaxRange {
		DespawnProjectile(ctx, pr)
		return true
	}
	return false
}

// DespawnProjectile removes a projectile from the scene and the game state
func DespawnProjectile(ctx *engine.GameContext, pr *component.Projectile) {
	if pr.Done {
		return
	}
	pr.Done = true
	ctx.Scene.Remove(pr.Node)
	ctx.State.Projectiles = slices.DeleteFunc(ctx.State.Projectiles, func(p *component.Projectile) bool {
		return p == pr
	})
}

// DespawnProjectilesOf removes every projectile fired by m
func DespawnProjectilesOf(ctx *engine.GameContext, m *component.Minion) {
	for _, pr := range slices.Clone(ctx.State.Projectiles) {
		if pr.Owner == m {
			DespawnProjectile(ctx, pr)
		}
	}
}
