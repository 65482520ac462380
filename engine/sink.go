package engine

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/quiz"
)

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . AudioSink,UISink

// SceneSink owns the visual representation of entities
// Gameplay adds a node once and mutates it in place; Remove detaches it
type SceneSink interface {
	Add(n *component.Node)
	Remove(n *component.Node)
}

// Tint is a full-screen color wash, zero value disables it
type Tint struct {
	Color    component.Color
	Strength float64
}

// UISink receives HUD updates, notifications and quiz presentation
type UISink interface {
	SetHealth(pct float64)
	SetShield(pct float64)
	SetBolts(n int)
	SetProgress(level, stage int)
	Notify(text string, color component.Color, d time.Duration)
	ShowQuestion(q quiz.Question, index, total int)
	HideQuiz()
	SetBackground(name string)
	SetTint(t Tint)
}

// AudioSink plays music tracks and one-shot effects
// Volume is in [0, 1]
type AudioSink interface {
	Play(track string)
	SetVolume(v float64)
	Volume() float64
	Effect(name string)
}

// NopScene discards scene updates
type NopScene struct{}

func (NopScene) Add(*component.Node)    {}
func (NopScene) Remove(*component.Node) {}

// NopUI discards UI updates
type NopUI struct{}

func (NopUI) SetHealth(float64)                             {}
func (NopUI) SetShield(float64)                             {}
func (NopUI) SetBolts(int)                                  {}
func (NopUI) SetProgress(int, int)                          {}
func (NopUI) Notify(string, component.Color, time.Duration) {}
func (NopUI) ShowQuestion(quiz.Question, int, int)          {}
func (NopUI) HideQuiz()                                     {}
func (NopUI) SetBackground(string)                          {}
func (NopUI) SetTint(Tint)                                  {}

// SilentAudio tracks track and volume without producing sound
// Used when the audio device is unavailable
type SilentAudio struct {
	Track  string
	volume float64
}

// NewSilentAudio creates a silent sink at full volume
func NewSilentAudio() *SilentAudio {
	return &SilentAudio{volume: 1}
}

func (a *SilentAudio) Play(track string) { a.Track = track }

func (a *SilentAudio) SetVolume(v float64) { a.volume = max(0, min(1, v)) }

func (a *SilentAudio) Volume() float64 { return a.volume }

func (a *SilentAudio) Effect(string) {}
