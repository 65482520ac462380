package render

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
)

// Scene is the scene sink: the set of nodes the gameplay code has attached
type Scene struct {
	nodes []*component.Node
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add attaches a node; adding an attached node is a no-op
func (s *Scene) Add(n *component.Node) {
	if n == nil || slices.Contains(s.nodes, n) {
		return
	}
	s.nodes = append(s.nodes, n)
}

// Remove detaches a node; removing an unknown node is a no-op
func (s *Scene) Remove(n *component.Node) {
	s.nodes = slices.DeleteFunc(s.nodes, func(o *component.Node) bool {
		return o == n
	})
}

// Len returns the number of attached nodes
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Nodes returns the attached nodes in draw order, stable within a kind
func (s *Scene) Nodes() []*component.Node {
	out := slices.Clone(s.nodes)
	slices.SortStableFunc(out, func(a, b *component.Node) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return out
}

// Clear detaches every node
func (s *Scene) Clear() {
	s.nodes = nil
}

// SceneRenderer draws the scene's nodes through the camera
type SceneRenderer struct {
	scene *Scene
	hud   *HUD

	// kinds limits the renderer to a subset of node kinds
	kinds []component.NodeKind
}

// NewSceneRenderer creates a renderer for the listed node kinds
func NewSceneRenderer(scene *Scene, hud *HUD, kinds ...component.NodeKind) *SceneRenderer {
	return &SceneRenderer{scene: scene, hud: hud, kinds: kinds}
}

func (r *SceneRenderer) Render(rc Context, screen tcell.Screen) {
	sky := SkyFor(r.hud.Background())
	tint := r.hud.Tint()
	for _, n := range r.scene.Nodes() {
		if !n.Visible || !slices.Contains(r.kinds, n.Kind) {
			continue
		}
		switch n.Kind {
		case component.NodePlatform, component.NodeStairs:
			r.drawPlatform(rc, screen, n, sky, tint)
		default:
			col, row := rc.Camera.ToScreen(n.X, n.Y)
			if !rc.Camera.Visible(col, row) {
				continue
			}
			bg := ApplyTint(sky.At(rowFraction(row, rc.Height)), tint)
			fg := Mix(bg, n.Color, n.Opacity)
			style := tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
			screen.SetContent(col, row, glyph(n), nil, style)
		}
	}
}

// drawPlatform draws a roof line and, for rooftops, the building body down to the bottom row
func (r *SceneRenderer) drawPlatform(rc Context, screen tcell.Screen, n *component.Node, sky Sky, tint engine.Tint) {
	left, roof := rc.Camera.ToScreen(n.X, n.Y)
	right, _ := rc.Camera.ToScreen(n.X+n.Width, n.Y)
	color := ApplyTint(n.Color, tint)
	body := Mix(color, 0x000000, 0.5)

	for col := max(0, left); col <= min(rc.Width-1, right); col++ {
		for row := max(hudRows, roof); row < rc.Height; row++ {
			bg := ApplyTint(sky.At(rowFraction(row, rc.Height)), tint)
			ch, fg := ' ', bg
			switch {
			case row == roof:
				ch, fg = '▀', Mix(bg, color, n.Opacity)
			case n.Kind == component.NodePlatform:
				ch, fg = '░', body
			default:
				continue
			}
			style := tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// glyph mirrors directional glyphs for left-facing nodes
func glyph(n *component.Node) rune {
	if n.FacingRight {
		return n.Glyph
	}
	switch n.Glyph {
	case '>':
		return '<'
	case ')':
		return '('
	}
	return n.Glyph
}

func rowFraction(row, height int) float64 {
	if height <= 1 {
		return 0
	}
	return float64(row) / float64(height-1)
}
