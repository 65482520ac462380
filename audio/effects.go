package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// note is one step of an effect recipe
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

const (
	effectAttack  = 5 * time.Millisecond
	effectRelease = 40 * time.Millisecond
)

// effectRecipes maps effect names to note sequences
var effectRecipes = map[string][]note{
	parameter.SoundJump:    {{330, 60 * time.Millisecond, WaveSquare}, {440, 60 * time.Millisecond, WaveSquare}},
	parameter.SoundBoost:   {{330, 50 * time.Millisecond, WaveSquare}, {494, 50 * time.Millisecond, WaveSquare}, {659, 90 * time.Millisecond, WaveSquare}},
	parameter.SoundDodge:   {{0, 120 * time.Millisecond, WaveNoise}},
	parameter.SoundBolt:    {{1320, 40 * time.Millisecond, WaveSaw}, {880, 80 * time.Millisecond, WaveSaw}},
	parameter.SoundEmpty:   {{110, 120 * time.Millisecond, WaveSaw}},
	parameter.SoundHit:     {{180, 90 * time.Millisecond, WaveSaw}, {120, 110 * time.Millisecond, WaveSaw}},
	parameter.SoundShield:  {{587, 70 * time.Millisecond, WaveSine}, {392, 110 * time.Millisecond, WaveSine}},
	parameter.SoundShot:    {{0, 60 * time.Millisecond, WaveNoise}},
	parameter.SoundDefeat:  {{392, 70 * time.Millisecond, WaveSquare}, {262, 70 * time.Millisecond, WaveSquare}, {196, 140 * time.Millisecond, WaveSquare}},
	parameter.SoundPickup:  {{988, 60 * time.Millisecond, WaveSquare}, {1319, 120 * time.Millisecond, WaveSquare}},
	parameter.SoundCorrect: {{523, 80 * time.Millisecond, WaveSine}, {784, 160 * time.Millisecond, WaveSine}},
	parameter.SoundWrong:   {{220, 100 * time.Millisecond, WaveSaw}, {165, 200 * time.Millisecond, WaveSaw}},
	parameter.SoundReveal:  {{440, 90 * time.Millisecond, WaveSine}, {554, 90 * time.Millisecond, WaveSine}, {659, 180 * time.Millisecond, WaveSine}},
	parameter.SoundFall:    {{660, 120 * time.Millisecond, WaveSine}, {440, 120 * time.Millisecond, WaveSine}, {220, 240 * time.Millisecond, WaveSine}},
	parameter.SoundDeath:   {{147, 200 * time.Millisecond, WaveSaw}, {110, 400 * time.Millisecond, WaveSaw}},
}

// EffectStreamer builds the streamer of a named effect, nil for unknown names
func EffectStreamer(name string, rate beep.SampleRate) beep.Streamer {
	recipe, ok := effectRecipes[name]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(recipe))
	for i, n := range recipe {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts[i] = NewEnvelope(osc, n.dur, effectAttack, min(effectRelease, n.dur/2), rate)
	}
	return newVolume(beep.Seq(parts...), parameter.EffectVolume)
}
