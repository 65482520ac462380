package system

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// PlatformNode creates the scene node of a platform
func PlatformNode(kind component.NodeKind, p component.Platform, color component.Color) *component.Node {
	n := component.NewNode(kind, p.XMin, p.Height, '=', color)
	n.Width = p.XMax - p.XMin
	n.Height = p.Height
	return n
}

// RevealStairs fades in the named stair set and makes it solid once fully visible
// Returns false when the script has no such set
func RevealStairs(ctx *engine.GameContext, key string) bool {
	specs := ctx.Script.Stairs[key]
	if len(specs) == 0 {
		return false
	}

	platforms := make([]component.Platform, len(specs))
	nodes := make([]*component.Node, len(specs))
	for i, sp := range specs {
		platforms[i] = sp.Platform()
		nodes[i] = PlatformNode(component.NodeStairs, platforms[i], parameter.ColorStairs)
		nodes[i].Opacity = 0
		ctx.Scene.Add(nodes[i])
	}
	ctx.Emit(event.EventSoundRequest, &event.SoundPayload{Name: parameter.SoundReveal})

	var elapsed time.Duration
	ctx.Scheduler.Every(ctx.Level, func(now time.Time, dt time.Duration) bool {
		elapsed += dt
		opacity := min(1, float64(elapsed)/float64(parameter.StairsRevealDuration))
		for _, n := range nodes {
			n.Opacity = opacity
		}
		if opacity < 1 {
			return false
		}
		ctx.State.Platforms = append(ctx.State.Platforms, platforms...)
		ctx.Logf("stairs %s solid", key)
		return true
	})
	return true
}
