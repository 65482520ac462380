package system

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

const frameDT = parameter.ReferenceFrame

// addMinion places a minion of type mt near the hero
func addMinion(ctx *engine.GameContext, id string, mt component.MinionType, lvl int, x, y float64) *component.Minion {
	m := component.NewMinion(id, mt, lvl, x, y, ctx.Level)
	m.LastProjectile = ctx.Now
	ctx.State.Minions = append(ctx.State.Minions, m)
	return m
}

// drain consumes the queue and counts events per type
func drain(ctx *engine.GameContext) map[event.EventType]int {
	counts := make(map[event.EventType]int)
	for _, ev := range ctx.Events.Consume() {
		counts[ev.Type]++
	}
	return counts
}

// runFor advances the context and its scheduler for d in reference frames
func runFor(ctx *engine.GameContext, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frameDT {
		ctx.Advance(frameDT)
		ctx.Scheduler.Run()
	}
}

func secs(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

// sceneRecorder is a SceneSink that tracks attached nodes
type sceneRecorder struct {
	nodes map[*component.Node]bool
}

func newSceneRecorder() *sceneRecorder {
	return &sceneRecorder{nodes: make(map[*component.Node]bool)}
}

func (r *sceneRecorder) Add(n *component.Node)    { r.nodes[n] = true }
func (r *sceneRecorder) Remove(n *component.Node) { delete(r.nodes, n) }

func (r *sceneRecorder) count(kind component.NodeKind) int {
	n := 0
	for node := range r.nodes {
		if node.Kind == kind {
			n++
		}
	}
	return n
}
