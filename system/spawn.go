package system

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
)

// SpawnWave creates the minions of a scripted wave and sets the fight quota to its size
// Minion tasks are scoped to the current level group
func SpawnWave(ctx *engine.GameContext, name string) error {
	w, ok := ctx.Script.Wave(name)
	if !ok {
		return fmt.Errorf("wave %q not in script", name)
	}
	mt, err := w.MinionType()
	if err != nil {
		return fmt.Errorf("wave %q: %w", name, err)
	}

	for _, sp := range w.Spawns {
		m := component.NewMinion(uuid.NewString(), mt, w.Level, sp.X, sp.Y, ctx.Level)
		// First shot waits a full cooldown
		m.LastProjectile = ctx.Now
		ctx.State.Minions = append(ctx.State.Minions, m)
		ctx.Scene.Add(m.Node)
	}
	ctx.State.TotalMinions = w.Quota()
	ctx.State.MinionsSpawned = true
	ctx.Logf("wave %s spawned: %d %s level %d", name, w.Quota(), mt, w.Level)
	return nil
}

// ScheduleWave spawns a wave after delay unless the level group is cancelled first
func ScheduleWave(ctx *engine.GameContext, name string, delay time.Duration, then func()) {
	ctx.Scheduler.After(ctx.Level, delay, func() {
		if err := SpawnWave(ctx, name); err != nil {
			ctx.Logf("spawn failed: %v", err)
			return
		}
		if then != nil {
			then()
		}
	})
}

// ClearMinions removes every minion and projectile and resets the fight counter
func ClearMinions(ctx *engine.GameContext) {
	for _, m := range ctx.State.Minions {
		ctx.Scene.Remove(m.Node)
		m.Tasks.Cancel()
	}
	for _, pr := range slices.Clone(ctx.State.Projectiles) {
		DespawnProjectile(ctx, pr)
	}
	ctx.State.Minions = nil
	ctx.State.MinionsFought = 0
	ctx.State.TotalMinions = 0
	ctx.State.MinionsSpawned = false
}
