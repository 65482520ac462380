package system

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// quizTintStrength is the blend factor of the hero's quiz tint
const quizTintStrength = 0.6

// VisualSystem mirrors entity state onto scene nodes
// Damage invulnerability flickers the hero; quiz invulnerability tints it
type VisualSystem struct{}

// NewVisualSystem creates the node sync stage
func NewVisualSystem() *VisualSystem {
	return &VisualSystem{}
}

func (s *VisualSystem) Name() string {
	return "visual"
}

func (s *VisualSystem) Update(ctx *engine.GameContext) {
	h := ctx.Hero
	n := h.Node
	n.X, n.Y = h.X, h.Y
	n.FacingRight = h.FacingRight
	n.Visible = HeroVisible(h)
	n.Color = HeroColor(h)
	n.Opacity = 1
	if h.IsDodging {
		n.Opacity = 0.5
	}

	for _, m := range ctx.State.Minions {
		if !m.Combatant() {
			continue
		}
		m.Node.X = m.X
		m.Node.Y = m.Y + m.BobOffset
		m.Node.FacingRight = m.FacingRight
		m.Node.Color = MinionColor(m)
	}
}

// HeroVisible implements the damage flicker: the hero blinks every FlickerInterval of remaining invulnerability
func HeroVisible(h *component.Hero) bool {
	if !h.IsInvulnerable || h.InvulnerableKind != component.InvulnerableDamage || h.IsDodging {
		return true
	}
	return (h.InvulnerableTime/parameter.FlickerInterval)%2 == 0
}

// HeroColor returns the hero's base color, tinted while the quiz protects it
func HeroColor(h *component.Hero) component.Color {
	if h.IsInvulnerable && h.InvulnerableKind == component.InvulnerableQuiz {
		return Blend(parameter.ColorHero, parameter.ColorQuiz, quizTintStrength)
	}
	return parameter.ColorHero
}

// MinionColor darkens a minion's type color as its health drops
func MinionColor(m *component.Minion) component.Color {
	base := component.Color(m.Type.Profile().Color)
	lost := 1 - float64(m.Health)/parameter.MinionMaxHealth
	return Blend(base, parameter.ColorHit, max(0, min(1, lost))*0.5)
}

// Blend mixes two colors in Lab space; t=0 is a, t=1 is b
func Blend(a, b component.Color, t float64) component.Color {
	ca, cb := toColorful(a), toColorful(b)
	return fromColorful(ca.BlendLab(cb, t).Clamped())
}

func toColorful(c component.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) component.Color {
	r, g, b := c.RGB255()
	return component.Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}
