package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rooftop-fighter/engine"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	camera    Camera
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to screen at its current size
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		camera:    NewCamera(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates camera dimensions and syncs the terminal
func (o *Orchestrator) Resize() {
	o.camera.Width, o.camera.Height = o.screen.Size()
	o.screen.Sync()
}

// Camera returns the camera used by the last frame
func (o *Orchestrator) Camera() Camera {
	return o.camera
}

// RenderFrame executes the render pipeline: follow, clear, render all, show
func (o *Orchestrator) RenderFrame(game *engine.GameContext, now time.Time) {
	if game != nil && game.Hero != nil {
		o.camera.Follow(game.Hero.X)
	}
	rc := Context{
		Game:   game,
		Camera: o.camera,
		Width:  o.camera.Width,
		Height: o.camera.Height,
		Now:    now,
	}

	o.screen.Clear()
	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(rc, o.screen)
	}
	o.screen.Show()
}
