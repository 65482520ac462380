// Package status holds lock-free gameplay telemetry read by the debug HUD line
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the session
const (
	KeyFrames         = "frames"
	KeyMinionsDefeat  = "minions.defeated"
	KeyMinionsActive  = "minions.active"
	KeyQuizCorrect    = "quiz.correct"
	KeyQuizAsked      = "quiz.asked"
	KeyBoltsFired     = "bolts.fired"
	KeyDamageTaken    = "damage.taken"
	KeyTasks          = "tasks"
	KeyFrameMillis    = "frame.ms"
	KeyLevel          = "level"
	KeyPhase          = "phase"
	KeyPaused         = "paused"
	KeyAudioAvailable = "audio"
)

// Registry groups metrics by value type
// Writers cache the pointer returned by Get and update it without locking
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line formats every metric as "key=value" pairs in key order per type
func (r *Registry) Line() string {
	var parts []string
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, k+"="+v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		if v.Load() {
			parts = append(parts, k)
		}
	})
	return strings.Join(parts, " ")
}
