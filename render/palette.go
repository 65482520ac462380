package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
)

// Sky is a vertical backdrop gradient
type Sky struct {
	Top    component.Color
	Bottom component.Color
}

// skies maps level script background names to gradients
var skies = map[string]Sky{
	"dusk":  {Top: 0x1E1432, Bottom: 0xB4503C},
	"night": {Top: 0x050814, Bottom: 0x1E2846},
	"storm": {Top: 0x141418, Bottom: 0x3C4650},
	"dawn":  {Top: 0x324678, Bottom: 0xF0B48C},
}

// defaultSky is used for unknown background names
var defaultSky = Sky{Top: 0x000000, Bottom: 0x202020}

// SkyFor returns the gradient of a background name
func SkyFor(name string) Sky {
	if s, ok := skies[name]; ok {
		return s
	}
	return defaultSky
}

// At returns the sky color at t, 0 at the top and 1 at the bottom
// Interpolation runs in HCL so hues stay saturated through the blend
func (s Sky) At(t float64) component.Color {
	t = max(0, min(1, t))
	return fromColorful(toColorful(s.Top).BlendHcl(toColorful(s.Bottom), t).Clamped())
}

// Mix blends a toward b in Lab space; t=0 is a, t=1 is b
func Mix(a, b component.Color, t float64) component.Color {
	t = max(0, min(1, t))
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t))
}

// ApplyTint blends c toward the tint color by the tint strength
func ApplyTint(c component.Color, tint engine.Tint) component.Color {
	if tint.Strength <= 0 {
		return c
	}
	return Mix(c, tint.Color, tint.Strength)
}

// TcellColor converts a packed color to a true color tcell color
func TcellColor(c component.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c component.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) component.Color {
	r, g, b := c.Clamped().RGB255()
	return component.Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}
