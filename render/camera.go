package render

import (
	"math"

	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// hudRows is the number of screen rows reserved above the world view
const hudRows = 2

// Camera maps world coordinates to screen cells
// World y grows upward; the bottom screen row is y = 0
type Camera struct {
	// X is the world x of the left screen edge
	X float64

	Width, Height int
}

// NewCamera creates a camera for a screen of the given size
func NewCamera(width, height int) Camera {
	return Camera{Width: width, Height: height}
}

// ViewUnits returns the world width visible on screen
func (c Camera) ViewUnits() float64 {
	return float64(c.Width) / parameter.CellsPerUnitX
}

// Follow scrolls so the hero sits at CameraLeadFraction of the view, never left of x = 0
func (c *Camera) Follow(heroX float64) {
	c.X = max(0, heroX-c.ViewUnits()*parameter.CameraLeadFraction)
}

// ToScreen converts a world position to a screen cell
func (c Camera) ToScreen(x, y float64) (col, row int) {
	col = int(math.Round((x - c.X) * parameter.CellsPerUnitX))
	row = c.Height - 1 - int(math.Round(y*parameter.CellsPerUnitY))
	return col, row
}

// Visible reports whether a cell lies inside the world view
func (c Camera) Visible(col, row int) bool {
	return col >= 0 && col < c.Width && row >= hudRows && row < c.Height
}
