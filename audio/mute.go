package audio

import (
	"sync"

	"github.com/lixenwraith/rooftop-fighter/engine"
)

// Muter wraps an audio sink with a mute switch
// Volume reports the requested level so fades keep working while muted
type Muter struct {
	mu     sync.Mutex
	sink   engine.AudioSink
	volume float64
	muted  bool
}

// NewMuter wraps sink, starting muted when muted is set
func NewMuter(sink engine.AudioSink, muted bool) *Muter {
	m := &Muter{sink: sink, volume: sink.Volume(), muted: muted}
	if muted {
		sink.SetVolume(0)
	}
	return m
}

func (m *Muter) Play(track string) {
	m.sink.Play(track)
}

func (m *Muter) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = max(0, min(1, v))
	if !m.muted {
		m.sink.SetVolume(m.volume)
	}
}

func (m *Muter) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Muter) Effect(name string) {
	m.mu.Lock()
	muted := m.muted
	m.mu.Unlock()
	if !muted {
		m.sink.Effect(name)
	}
}

// Toggle flips the mute switch and returns the new state
func (m *Muter) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	if m.muted {
		m.sink.SetVolume(0)
	} else {
		m.sink.SetVolume(m.volume)
	}
	return m.muted
}
