package component

// Color is a packed 0xRRGGBB value
type Color uint32

// RGB unpacks the color channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// NodeKind selects how a scene node is drawn
type NodeKind uint8

const (
	NodePlatform NodeKind = iota
	NodeStairs
	NodePickup
	NodeMinion
	NodeProjectile
	NodeHero
	NodeBoltShot
	NodeBurst
)

// Node is the visual handle of an entity inside the scene sink
// Gameplay code only reads back the fields it wrote itself
type Node struct {
	Kind NodeKind

	// X, Y is the world position; for platforms the top-left corner
	X, Y float64

	// Width, Height is the world extent for platform-like nodes
	Width, Height float64

	Glyph   rune
	Color   Color
	Opacity float64
	Scale   float64
	Visible bool

	// FacingRight mirrors directional glyphs
	FacingRight bool
}

// NewNode creates a visible, fully opaque node
func NewNode(kind NodeKind, x, y float64, glyph rune, color Color) *Node {
	return &Node{
		Kind:        kind,
		X:           x,
		Y:           y,
		Glyph:       glyph,
		Color:       color,
		Opacity:     1,
		Scale:       1,
		Visible:     true,
		FacingRight: true,
	}
}
