package component

// Platform is a static rooftop collision surface
type Platform struct {
	Name string

	XMin, XMax float64

	// Height is the y of the top surface
	Height float64

	// Depth is the z extent, centered on z = 0
	Depth float64
}

// SpansX reports whether [lo, hi] overlaps the platform's horizontal span
func (p Platform) SpansX(lo, hi float64) bool {
	return hi >= p.XMin && lo <= p.XMax
}

// ContainsZ reports whether z lies within the platform depth
func (p Platform) ContainsZ(z float64) bool {
	half := p.Depth / 2
	return z >= -half && z <= half
}
