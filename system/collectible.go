package system

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/physics"
)

// CollectibleSystem hands out bolt pickups and respawns them after a cooldown
type CollectibleSystem struct{}

// NewCollectibleSystem creates the pickup stage
func NewCollectibleSystem() *CollectibleSystem {
	return &CollectibleSystem{}
}

func (s *CollectibleSystem) Name() string {
	return "collectible"
}

// SpawnPickups places the script's bolt pickups
func SpawnPickups(ctx *engine.GameContext) {
	for _, p := range ctx.Script.Pickups {
		b := &component.Bolt{X: p.X, Y: p.Y}
		b.Node = component.NewNode(component.NodePickup, p.X, p.Y, '+', parameter.ColorPickup)
		ctx.State.Bolts = append(ctx.State.Bolts, b)
		ctx.Scene.Add(b.Node)
	}
}

func (s *CollectibleSystem) Update(ctx *engine.GameContext) {
	h := ctx.Hero
	for _, b := range ctx.State.Bolts {
		if b.Collected {
			if ctx.Now.Sub(b.CollectedAt) >= h.BoltRespawnCooldown {
				b.Collected = false
				b.CollectedAt = time.Time{}
				b.Node.Visible = true
				h.LastBoltRespawn = ctx.Now
			}
			continue
		}
		if h.Dead || h.Falling || ctx.State.Phase != component.PhaseGameplay {
			continue
		}
		if physics.Distance(h.X, h.Y, b.X, b.Y) < parameter.PickupRadius {
			b.Collected = true
			b.CollectedAt = ctx.Now
			b.Node.Visible = false
			h.BoltCount += parameter.PickupBolts
			h.HasBoltAttack = true
			ctx.Emit(event.EventPickupCollected, nil)
		}
	}
}
