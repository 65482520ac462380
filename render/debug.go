package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rooftop-fighter/status"
)

// DebugRenderer prints the status registry line on the bottom row
type DebugRenderer struct {
	registry *status.Registry
	enabled  bool
}

func NewDebugRenderer(registry *status.Registry, enabled bool) *DebugRenderer {
	return &DebugRenderer{registry: registry, enabled: enabled}
}

func (r *DebugRenderer) IsVisible() bool {
	return r.enabled && r.registry != nil
}

// Toggle flips the overlay
func (r *DebugRenderer) Toggle() {
	r.enabled = !r.enabled
}

func (r *DebugRenderer) Render(rc Context, screen tcell.Screen) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	drawText(screen, 0, rc.Height-1, r.registry.Line(), style)
}
