// Package render draws a session onto a tcell screen and implements the scene and UI sinks
package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rooftop-fighter/engine"
)

// Renderer is implemented by every draw stage of the pipeline
type Renderer interface {
	Render(rc Context, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Context is the per-frame input of every renderer
type Context struct {
	Game   *engine.GameContext
	Camera Camera
	Width  int
	Height int
	Now    time.Time
}

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityPlatforms
	PriorityEntities
	PriorityEffects
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
