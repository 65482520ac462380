package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// Player plays synthesized music and effects on the speaker
// All methods are safe for concurrent use; stream mutation happens under the speaker lock
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	gain   *effects.Volume
	track  string
	volume float64

	// live is false when no speaker is attached
	live bool
}

// NewPlayer initializes the speaker and starts the mixer
func NewPlayer() (*Player, error) {
	p := newPlayer(beep.SampleRate(parameter.AudioSampleRate))
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	return p, nil
}

func newPlayer(rate beep.SampleRate) *Player {
	return &Player{
		rate:   rate,
		mixer:  &beep.Mixer{},
		volume: parameter.MusicVolume,
	}
}

func (p *Player) lock() {
	p.mu.Lock()
	if p.live {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.live {
		speaker.Unlock()
	}
	p.mu.Unlock()
}

// Play switches the music to track; replaying the current track is a no-op
func (p *Player) Play(track string) {
	s := TrackStreamer(track, p.rate)
	if s == nil {
		log.Printf("audio: unknown track %q", track)
		return
	}

	p.lock()
	defer p.unlock()
	if track == p.track && p.music != nil {
		return
	}
	if p.music != nil {
		// A nil streamer drains out of the mixer
		p.music.Streamer = nil
	}
	p.gain = newVolume(s, p.volume)
	p.music = &beep.Ctrl{Streamer: p.gain}
	p.mixer.Add(p.music)
	p.track = track
}

// Track returns the playing track name
func (p *Player) Track() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.track
}

// SetVolume sets the music volume, clamped to [0, 1]
func (p *Player) SetVolume(v float64) {
	v = max(0, min(1, v))
	p.lock()
	defer p.unlock()
	p.volume = v
	if p.gain != nil {
		setLinear(p.gain, v)
	}
}

// Volume returns the music volume
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Effect plays a one-shot effect over the music
func (p *Player) Effect(name string) {
	s := EffectStreamer(name, p.rate)
	if s == nil {
		return
	}
	p.lock()
	defer p.unlock()
	p.mixer.Add(s)
}

// Close stops all sound and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Lock()
	}
	p.mixer.Clear()
	p.music = nil
	p.gain = nil
	if p.live {
		speaker.Unlock()
		speaker.Close()
		p.live = false
	}
}
