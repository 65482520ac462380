package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// trackSpec describes a looping background pattern
type trackSpec struct {
	beat time.Duration
	// bass is the per-beat bass frequency sequence
	bass []float64
	// kick marks beats carrying a kick drum
	kick []bool
	lead WaveType
}

var trackSpecs = map[string]trackSpec{
	"skyline": {
		beat: 500 * time.Millisecond,
		bass: []float64{110, 110, 131, 147},
		kick: []bool{true, false, true, false},
		lead: WaveSine,
	},
	"pursuit": {
		beat: 375 * time.Millisecond,
		bass: []float64{98, 98, 117, 131, 98, 147, 131, 117},
		kick: []bool{true, true, false, true, true, false, true, false},
		lead: WaveSquare,
	},
	"siege": {
		beat: 430 * time.Millisecond,
		bass: []float64{82, 82, 87, 82, 98, 92, 87, 82},
		kick: []bool{true, false, true, true, true, false, true, true},
		lead: WaveSaw,
	},
	"aftermath": {
		beat: 650 * time.Millisecond,
		bass: []float64{131, 165, 196, 165},
		kick: []bool{true, false, false, false},
		lead: WaveSine,
	},
}

// trackGenerator loops a bass and kick pattern forever
type trackGenerator struct {
	spec     trackSpec
	rate     beep.SampleRate
	beatLen  int
	kickLen  int
	position int
	phase    float64
}

// TrackStreamer builds the endless streamer of a named track, nil for unknown names
func TrackStreamer(name string, rate beep.SampleRate) beep.Streamer {
	spec, ok := trackSpecs[name]
	if !ok {
		return nil
	}
	return &trackGenerator{
		spec:    spec,
		rate:    rate,
		beatLen: rate.N(spec.beat),
		kickLen: rate.N(90 * time.Millisecond),
	}
}

func (g *trackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	steps := len(g.spec.bass)
	for i := range samples {
		beat := (g.position / g.beatLen) % steps
		inBeat := g.position % g.beatLen
		t := float64(inBeat) / float64(g.rate)

		freq := g.spec.bass[beat]
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		// Short decay per beat keeps notes separated
		decay := math.Exp(-t * 3)
		v := 0.18 * decay * g.spec.lead.sample(g.phase)

		if g.spec.kick[beat] && inBeat < g.kickLen {
			env := 1 - float64(inBeat)/float64(g.kickLen)
			v += 0.35 * env * math.Sin(2*math.Pi*55*(1+2*env)*t)
		}

		samples[i][0] = v
		samples[i][1] = v
		g.position++
	}
	return len(samples), true
}

func (g *trackGenerator) Err() error { return nil }
