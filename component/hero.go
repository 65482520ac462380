package component

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// InvulnerabilityKind distinguishes the damage flicker from the quiz tint
type InvulnerabilityKind uint8

const (
	InvulnerableNone InvulnerabilityKind = iota
	InvulnerableDamage
	InvulnerableQuiz
)

// HeroProgress is the hero's view of Level 3 sub-stage progression
type HeroProgress struct {
	// CurrentStage is 1-3, only meaningful on Level 3
	CurrentStage int
}

// Hero is the player character
type Hero struct {
	X, Y, Z float64
	VX, VY  float64

	Health       int
	ShieldHealth int

	Grounded       bool
	Falling        bool
	Dead           bool
	IsDodging      bool
	IsInvulnerable bool
	HasBoltAttack  bool
	HasSmokeAttack bool
	HasShield      bool
	FacingRight    bool

	LastHit         time.Time
	LastAttack      time.Time
	LastDodge       time.Time
	LastBoltRespawn time.Time

	// InvulnerableTime is the remaining invulnerability window
	InvulnerableTime time.Duration
	InvulnerableKind InvulnerabilityKind

	// DodgeRemaining is the remaining time of the active dodge
	DodgeRemaining time.Duration
	DodgeDir       float64

	DodgeDuration       time.Duration
	DodgeCooldown       time.Duration
	BoltRespawnCooldown time.Duration

	BoltCount int

	Progress *HeroProgress

	Node *Node
}

// NewHero creates a hero at the spawn point with full health and shield
func NewHero(x, y float64, progress *HeroProgress) *Hero {
	h := &Hero{
		X:                   x,
		Y:                   y,
		Health:              parameter.HeroMaxHealth,
		ShieldHealth:        parameter.HeroMaxShield,
		HasShield:           true,
		HasSmokeAttack:      true,
		FacingRight:         true,
		DodgeDuration:       parameter.DodgeDuration,
		DodgeCooldown:       parameter.DodgeCooldown,
		BoltRespawnCooldown: parameter.BoltRespawnCooldown,
		Progress:            progress,
	}
	h.Node = NewNode(NodeHero, x, y, '@', parameter.ColorHero)
	return h
}

// Foot returns the y coordinate of the hero's feet
func (h *Hero) Foot() float64 {
	return h.Y - parameter.HeroFootOffset
}

// Stage returns the hero's Level 3 sub-stage, 0 when progress is not tracked
func (h *Hero) Stage() int {
	if h.Progress == nil {
		return 0
	}
	return h.Progress.CurrentStage
}

// GrantInvulnerability opens an invulnerability window of the given kind
// A longer running window is never shortened
func (h *Hero) GrantInvulnerability(kind InvulnerabilityKind, d time.Duration) {
	if h.IsInvulnerable && h.InvulnerableTime >= d && h.InvulnerableKind == kind {
		return
	}
	if h.IsInvulnerable && h.InvulnerableKind == InvulnerableQuiz && kind != InvulnerableQuiz {
		return
	}
	h.IsInvulnerable = true
	h.InvulnerableKind = kind
	h.InvulnerableTime = d
}

// ClearInvulnerability ends any invulnerability window
func (h *Hero) ClearInvulnerability() {
	h.IsInvulnerable = false
	h.InvulnerableKind = InvulnerableNone
	h.InvulnerableTime = 0
}

// TickInvulnerability counts the window down by dt
func (h *Hero) TickInvulnerability(dt time.Duration) {
	if !h.IsInvulnerable {
		return
	}
	h.InvulnerableTime -= dt
	if h.InvulnerableTime <= 0 {
		h.ClearInvulnerability()
	}
}

// SetShield stores the shield value clamped to [0, max] and keeps HasShield in sync
func (h *Hero) SetShield(v int) {
	h.ShieldHealth = max(0, min(parameter.HeroMaxShield, v))
	h.HasShield = h.ShieldHealth > 0
}
