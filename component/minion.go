package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/rooftop-fighter/engine/task"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// MinionType is the closed set of minion variants
type MinionType uint8

const (
	MinionPlain MinionType = iota
	MinionGunMan
	MinionRifleMan
)

// ParseMinionType maps a script name to a minion type
func ParseMinionType(name string) (MinionType, error) {
	for i, p := range parameter.MinionProfiles {
		if p.Name == name {
			return MinionType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown minion type %q", name)
}

// Profile returns the attribute row of the type
func (t MinionType) Profile() parameter.MinionProfile {
	return parameter.MinionProfiles[t]
}

func (t MinionType) String() string {
	return t.Profile().Name
}

// Minion is a spawned enemy unit
type Minion struct {
	ID string

	// X, Y is the anchor position; the drawn position adds BobOffset
	X, Y float64

	Health   int
	Active   bool
	Defeated bool
	Level    int
	Type     MinionType
	Damage   int

	FacingRight bool
	BobOffset   float64

	LastHit        time.Time
	LastProjectile time.Time

	// Tasks is the cancellation scope of effects spawned on behalf of this minion
	Tasks *task.Group

	Node *Node
}

// NewMinion creates an active minion at full health
// The minion's task group is derived from scope so clearing a level cancels its effects
func NewMinion(id string, t MinionType, level int, x, y float64, scope *task.Group) *Minion {
	p := t.Profile()
	m := &Minion{
		ID:     id,
		X:      x,
		Y:      y,
		Health: parameter.MinionMaxHealth,
		Active: true,
		Level:  level,
		Type:   t,
		Damage: p.Damage,
		Tasks:  task.NewGroup(scope),
	}
	m.Node = NewNode(NodeMinion, x, y, p.Glyph, Color(p.Color))
	return m
}

// CanShoot reports whether the minion fires projectiles
func (m *Minion) CanShoot() bool {
	return m.Level >= parameter.ShootingLevel || m.Type.Profile().ShootsByType
}

// Combatant reports whether the minion still takes part in combat
func (m *Minion) Combatant() bool {
	return m.Active && !m.Defeated
}
