package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/rooftop-fighter/level"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

const (
	// headroom is the world height drawn above the tallest platform
	headroom = 12.0
	margin   = 2.0
)

// bounds returns the world extent covered by a script
func bounds(s *level.Script) (width, height float64) {
	grow := func(p level.PlatformSpec) {
		width = max(width, p.XMax)
		height = max(height, p.Height)
	}
	for _, p := range s.Platforms {
		grow(p)
	}
	for _, flight := range s.Stairs {
		for _, p := range flight {
			grow(p)
		}
	}
	width = max(width, s.Wall.X+s.Wall.Thickness, s.Level3EntryX)
	return width + margin, height + headroom
}

func rgb(c uint32) color.Color {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// renderMap draws the level geometry at scale pixels per world unit
// World y grows upward, so every shape is flipped against the image height
func renderMap(s *level.Script, scale float64) *gg.Context {
	w, h := bounds(s)
	dc := gg.NewContext(int(w*scale), int(h*scale))
	px := func(x float64) float64 { return x * scale }
	py := func(y float64) float64 { return (h - y) * scale }

	dc.SetColor(rgb(0x141428))
	dc.Clear()

	// Buildings run from the roof down to street level
	dc.SetColor(rgb(parameter.ColorRooftop))
	for _, p := range s.Platforms {
		dc.DrawRectangle(px(p.XMin), py(p.Height), px(p.XMax-p.XMin), p.Height*scale)
		dc.Fill()
	}

	// Stairs are thin slabs, one color per flight
	flights := make([]string, 0, len(s.Stairs))
	for name := range s.Stairs {
		flights = append(flights, name)
	}
	slices.Sort(flights)
	for i, name := range flights {
		c := rgb(parameter.ColorStairs)
		if i%2 == 1 {
			c = rgb(parameter.ColorLevel)
		}
		dc.SetColor(c)
		for _, p := range s.Stairs[name] {
			dc.DrawRectangle(px(p.XMin), py(p.Height), px(p.XMax-p.XMin), scale/2)
			dc.Fill()
		}
	}

	// Wall and Level 3 entry trigger
	dc.SetColor(color.RGBA{R: 0xF0, G: 0x50, B: 0x50, A: 0x80})
	dc.DrawRectangle(px(s.Wall.X), 0, px(s.Wall.Thickness), h*scale)
	dc.Fill()
	dc.SetColor(rgb(parameter.ColorWarn))
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	dc.DrawLine(px(s.Level3EntryX), 0, px(s.Level3EntryX), h*scale)
	dc.Stroke()
	dc.SetDash()

	// Pickups
	dc.SetColor(rgb(parameter.ColorPickup))
	for _, p := range s.Pickups {
		dc.DrawCircle(px(p.X), py(p.Y), scale/2)
		dc.Fill()
	}

	// Wave spawn points, labelled with the wave name
	waves := make([]string, 0, len(s.Waves))
	for name := range s.Waves {
		waves = append(waves, name)
	}
	slices.Sort(waves)
	for _, name := range waves {
		wave := s.Waves[name]
		dc.SetColor(rgb(waveColor(wave)))
		for _, p := range wave.Spawns {
			dc.DrawRegularPolygon(3, px(p.X), py(p.Y), scale*0.6, 0)
			dc.Fill()
		}
		if len(wave.Spawns) > 0 {
			first := wave.Spawns[0]
			dc.SetColor(rgb(parameter.ColorInfo))
			dc.DrawStringAnchored(fmt.Sprintf("%s x%d", name, wave.Quota()), px(first.X), py(first.Y)-scale, 0.5, 1)
		}
	}

	// Hero spawn
	dc.SetColor(rgb(parameter.ColorHero))
	dc.DrawCircle(px(s.HeroSpawn.X), py(s.HeroSpawn.Y), scale*0.6)
	dc.Fill()

	return dc
}

// waveColor picks the body color of the wave's minion type
func waveColor(w level.WaveSpec) uint32 {
	t, err := w.MinionType()
	if err != nil {
		return parameter.ColorDanger
	}
	return t.Profile().Color
}
