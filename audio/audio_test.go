package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

var _ engine.AudioSink = (*Player)(nil)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1.5 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		wave WaveType
		dur  time.Duration
	}{
		{WaveSine, 100 * time.Millisecond},
		{WaveSquare, 50 * time.Millisecond},
		{WaveSaw, 20 * time.Millisecond},
		{WaveNoise, 10 * time.Millisecond},
	}
	for _, tt := range tests {
		osc := NewOscillator(440, tt.dur, tt.wave, testRate)
		if got, want := drain(t, osc, 1<<20), testRate.N(tt.dur); got != want {
			t.Errorf("wave %d: streamed %d samples, want %d", tt.wave, got, want)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack does not start silent: %f", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1 {
		t.Errorf("sustain = %f, want 1", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release tail = %f", last)
	}
}

func TestEffectsCoverSoundNames(t *testing.T) {
	names := []string{
		parameter.SoundJump, parameter.SoundBoost, parameter.SoundDodge, parameter.SoundBolt,
		parameter.SoundEmpty, parameter.SoundHit, parameter.SoundShield, parameter.SoundShot,
		parameter.SoundDefeat, parameter.SoundPickup, parameter.SoundCorrect, parameter.SoundWrong,
		parameter.SoundReveal, parameter.SoundFall, parameter.SoundDeath,
	}
	for _, name := range names {
		s := EffectStreamer(name, testRate)
		if s == nil {
			t.Errorf("no effect for %q", name)
			continue
		}
		if n := drain(t, s, 1<<20); n == 0 || n > testRate.N(time.Second) {
			t.Errorf("effect %q length %d samples", name, n)
		}
	}
	if EffectStreamer("missing", testRate) != nil {
		t.Error("unknown effect produced a streamer")
	}
}

func TestTracksLoopForever(t *testing.T) {
	for name := range trackSpecs {
		s := TrackStreamer(name, testRate)
		if got := drain(t, s, testRate.N(3*time.Second)); got < testRate.N(3*time.Second) {
			t.Errorf("track %q ended after %d samples", name, got)
		}
	}
	if TrackStreamer("missing", testRate) != nil {
		t.Error("unknown track produced a streamer")
	}
}

func TestFadeStep(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		d      time.Duration
		want   float64
	}{
		{"full over 2s", 0.5, 2 * time.Second, 0.5 / 40},
		{"floored", 0.1, 2 * time.Second, parameter.MinFadeStep},
		{"zero volume", 0, 2 * time.Second, parameter.MinFadeStep},
		{"zero duration", 0.5, 0, 0.5},
	}
	for _, tt := range tests {
		if got := FadeStep(tt.volume, tt.d); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: FadeStep = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := newPlayer(testRate)
	p.Play("skyline")
	if p.Track() != "skyline" || p.mixer.Len() != 1 {
		t.Fatalf("track=%q mixer=%d", p.Track(), p.mixer.Len())
	}
	p.Play("skyline")
	if p.mixer.Len() != 1 {
		t.Error("replaying the current track added a streamer")
	}
	p.Play("unknown")
	if p.Track() != "skyline" {
		t.Error("unknown track replaced the current one")
	}

	p.SetVolume(2)
	if p.Volume() != 1 {
		t.Errorf("volume = %v, want clamp to 1", p.Volume())
	}
	p.SetVolume(0)
	if !p.gain.Silent {
		t.Error("zero volume not silent")
	}

	p.Effect(parameter.SoundPickup)
	p.Play("siege")
	if p.Track() != "siege" {
		t.Errorf("track = %q", p.Track())
	}
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer not cleared: %d", p.mixer.Len())
	}
}
