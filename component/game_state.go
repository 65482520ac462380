package component

// GamePhase is the coarse session phase
type GamePhase uint8

const (
	PhaseIntro GamePhase = iota
	PhaseGameplay
)

func (p GamePhase) String() string {
	if p == PhaseIntro {
		return "intro"
	}
	return "gameplay"
}

// GameState is the session-wide mutable record shared by every system
type GameState struct {
	Phase          GamePhase
	MovementLocked bool

	MinionsFought  int
	TotalMinions   int
	MinionsSpawned bool
	CurrentLevel   int

	// Level 3 gating, each flag flips once
	Level3Entered     bool
	HasDefeatedStage1 bool
	HasDefeatedStage2 bool
	HasDefeatedStage3 bool
	StageTransitioned bool
	AllGunmenDefeated bool
	FinalWaveSpawned  bool
	FinalWaveCleared  bool

	Background string
	Track      string

	// Progress is shared with the hero
	Progress *HeroProgress

	Minions     []*Minion
	Platforms   []Platform
	Bolts       []*Bolt
	Projectiles []*Projectile
}

// NewGameState creates the initial intro state on Level 1
func NewGameState() *GameState {
	return &GameState{
		Phase:          PhaseIntro,
		MovementLocked: true,
		CurrentLevel:   1,
		Progress:       &HeroProgress{},
	}
}

// ActiveMinions returns minions still taking part in combat
func (s *GameState) ActiveMinions() []*Minion {
	var out []*Minion
	for _, m := range s.Minions {
		if m.Combatant() {
			out = append(out, m)
		}
	}
	return out
}
