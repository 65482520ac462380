// Package level loads the level script: rooftop geometry, pickups, minion waves and Level 3 gates
package level

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// Wave names used by the progression system
const (
	WaveLevel1 = "level1"
	WaveLevel2 = "level2"
	WaveStage1 = "stage1"
	WaveStage2 = "stage2"
	WaveStage3 = "stage3"
	WaveFinale = "finale"
)

// Scene keys for backgrounds and tracks
const (
	SceneLevel1 = "level1"
	SceneLevel2 = "level2"
	SceneLevel3 = "level3"
	SceneFinale = "finale"
)

// Point is a world position
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlatformSpec describes one rooftop
type PlatformSpec struct {
	Name   string  `yaml:"name"`
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// Platform converts the spec to a collision surface
func (p PlatformSpec) Platform() component.Platform {
	return component.Platform{
		Name:   p.Name,
		XMin:   p.XMin,
		XMax:   p.XMax,
		Height: p.Height,
		Depth:  p.Depth,
	}
}

// WaveSpec describes a minion wave; the wave's quota is its spawn count
type WaveSpec struct {
	Type   string  `yaml:"type"`
	Level  int     `yaml:"level"`
	Spawns []Point `yaml:"spawns"`
}

// Quota returns the number of defeats that clear the wave
func (w WaveSpec) Quota() int {
	return len(w.Spawns)
}

// MinionType resolves the wave's minion type
func (w WaveSpec) MinionType() (component.MinionType, error) {
	return component.ParseMinionType(w.Type)
}

// WallSpec is the Level 3 invisible wall
type WallSpec struct {
	X         float64 `yaml:"x"`
	Thickness float64 `yaml:"thickness"`
}

// Script is a complete level script
type Script struct {
	Name string `yaml:"name"`

	HeroSpawn Point `yaml:"hero_spawn"`

	// Platforms are solid from the start; the first one hosts the boost zone
	Platforms []PlatformSpec `yaml:"platforms"`

	// Stairs are revealed by Level 3 stage transitions, keyed "a" and "b"
	Stairs map[string][]PlatformSpec `yaml:"stairs"`

	Pickups []Point `yaml:"pickups"`

	Waves map[string]WaveSpec `yaml:"waves"`

	// Level3EntryX is the hero x that starts Level 3 stage 1
	Level3EntryX float64 `yaml:"level3_entry_x"`

	Wall WallSpec `yaml:"wall"`

	Backgrounds map[string]string `yaml:"backgrounds"`
	Tracks      map[string]string `yaml:"tracks"`
}

// PlatformList returns the initial collision surfaces
func (s *Script) PlatformList() []component.Platform {
	out := make([]component.Platform, len(s.Platforms))
	for i, p := range s.Platforms {
		out[i] = p.Platform()
	}
	return out
}

// Wave returns a wave by name
func (s *Script) Wave(name string) (WaveSpec, bool) {
	w, ok := s.Waves[name]
	return w, ok
}

// Background returns the backdrop of a scene, falling back to the level 1 backdrop
func (s *Script) Background(scene string) string {
	if b, ok := s.Backgrounds[scene]; ok {
		return b
	}
	return s.Backgrounds[SceneLevel1]
}

// Track returns the music track of a scene, empty when the scene keeps the current track
func (s *Script) Track(scene string) string {
	return s.Tracks[scene]
}

var requiredWaves = []string{WaveLevel1, WaveLevel2, WaveStage1, WaveStage2, WaveStage3, WaveFinale}

// waveQuotas fixes the spawn count of every quota-gated wave; the finale has no gate
var waveQuotas = map[string]int{
	WaveLevel1: parameter.QuotaLevel1,
	WaveLevel2: parameter.QuotaLevel2,
	WaveStage1: parameter.QuotaStage1,
	WaveStage2: parameter.QuotaStage2,
	WaveStage3: parameter.QuotaStage3,
}

// Validate checks the script for the invariants the progression system relies on
func (s *Script) Validate() error {
	var errs []error

	if len(s.Platforms) == 0 {
		errs = append(errs, errors.New("no platforms"))
	}
	for i, p := range s.Platforms {
		if err := validatePlatform(p); err != nil {
			errs = append(errs, fmt.Errorf("platform %d: %w", i, err))
		}
	}
	for key, stairs := range s.Stairs {
		for i, p := range stairs {
			if err := validatePlatform(p); err != nil {
				errs = append(errs, fmt.Errorf("stairs %s[%d]: %w", key, i, err))
			}
		}
	}
	for _, key := range []string{"a", "b"} {
		if len(s.Stairs[key]) == 0 {
			errs = append(errs, fmt.Errorf("stairs %q missing", key))
		}
	}

	for _, name := range requiredWaves {
		w, ok := s.Waves[name]
		if !ok {
			errs = append(errs, fmt.Errorf("wave %q missing", name))
			continue
		}
		if _, err := w.MinionType(); err != nil {
			errs = append(errs, fmt.Errorf("wave %q: %w", name, err))
		}
		if w.Level < 1 || w.Level > 3 {
			errs = append(errs, fmt.Errorf("wave %q: level %d out of range 1-3", name, w.Level))
		}
		if w.Quota() == 0 {
			errs = append(errs, fmt.Errorf("wave %q: no spawns", name))
		} else if want, gated := waveQuotas[name]; gated && w.Quota() != want {
			errs = append(errs, fmt.Errorf("wave %q: %d spawns, quota is %d", name, w.Quota(), want))
		}
	}

	if s.Wall.Thickness <= 0 {
		errs = append(errs, errors.New("wall thickness must be positive"))
	}
	if s.Level3EntryX >= s.Wall.X {
		errs = append(errs, fmt.Errorf("level 3 entry x %.1f must precede wall x %.1f", s.Level3EntryX, s.Wall.X))
	}
	if _, ok := s.Backgrounds[SceneLevel1]; !ok {
		errs = append(errs, errors.New("level1 background missing"))
	}

	return errors.Join(errs...)
}

func validatePlatform(p PlatformSpec) error {
	if p.XMax <= p.XMin {
		return fmt.Errorf("%s: x_max %.1f not after x_min %.1f", p.Name, p.XMax, p.XMin)
	}
	if p.Depth <= 0 {
		return fmt.Errorf("%s: depth must be positive", p.Name)
	}
	return nil
}
