package render

import (
	"github.com/gdamore/tcell/v2"
)

// BackgroundRenderer fills the world view with the sky gradient of the current backdrop
type BackgroundRenderer struct {
	hud *HUD
}

func NewBackgroundRenderer(hud *HUD) *BackgroundRenderer {
	return &BackgroundRenderer{hud: hud}
}

func (r *BackgroundRenderer) Render(rc Context, screen tcell.Screen) {
	sky := SkyFor(r.hud.Background())
	tint := r.hud.Tint()
	for row := hudRows; row < rc.Height; row++ {
		style := tcell.StyleDefault.Background(TcellColor(ApplyTint(sky.At(rowFraction(row, rc.Height)), tint)))
		for col := 0; col < rc.Width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
