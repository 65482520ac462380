package physics

import (
	"math"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// Landing returns the first platform the hero lands on, or nil
// A landing requires horizontal overlap, depth containment, a non-rising hero
// and feet within the tolerance band around the platform top
func Landing(h *component.Hero, platforms []component.Platform) *component.Platform {
	if h.VY > 0 {
		return nil
	}
	foot := h.Foot()
	lo, hi := h.X-parameter.HeroHalfWidth, h.X+parameter.HeroHalfWidth
	for i := range platforms {
		p := &platforms[i]
		if !p.SpansX(lo, hi) || !p.ContainsZ(h.Z) {
			continue
		}
		if foot >= p.Height-parameter.LandTolerance && foot <= p.Height+parameter.SnapTolerance {
			return p
		}
	}
	return nil
}

// InBoostZone reports whether a jump from the hero's position is boosted
// The zone is the first platform past BoostZoneX
func InBoostZone(h *component.Hero, platforms []component.Platform) bool {
	if len(platforms) == 0 || h.X <= parameter.BoostZoneX {
		return false
	}
	first := platforms[0]
	return first.SpansX(h.X, h.X)
}

// ClampWall stops the hero at the wall's west face when inside it
// Returns true when the hero was blocked
func ClampWall(h *component.Hero, wallX, thickness float64) bool {
	if h.X < wallX || h.X > wallX+thickness {
		return false
	}
	h.X = wallX
	h.VX = 0
	return true
}

// Distance is the planar distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
