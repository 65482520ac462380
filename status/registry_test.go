package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyFrames)
	b := r.Ints.Get(KeyFrames)
	if a != b {
		t.Fatal("Get returned different cells for the same key")
	}
	if !r.Ints.Has(KeyFrames) || r.Ints.Has(KeyTasks) {
		t.Error("Has mismatch")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(KeyMinionsDefeat).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(KeyMinionsDefeat).Load(); got != 800 {
		t.Errorf("counter = %d, want 800", got)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestLine(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyPhase).Store("gameplay")
	r.Ints.Get(KeyLevel).Store(2)
	r.Floats.Get(KeyFrameMillis).Set(16.4)
	r.Bools.Get(KeyPaused).Store(true)
	r.Bools.Get(KeyAudioAvailable).Store(false)

	got := r.Line()
	want := "phase=gameplay level=2 frame.ms=16.4 paused"
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value not empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}
