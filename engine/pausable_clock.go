package engine

import (
	"sync"
	"time"
)

// PausableClock is game time: wall time minus every pause
// The frame loop reads it once per frame; the input goroutine toggles pause
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	start       time.Time
	paused      bool
	pauseStart  time.Time
	pausedTotal time.Duration
}

// NewPausableClock creates a running clock backed by source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Now returns the current game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	real := pc.source.Now()
	if pc.paused {
		real = pc.pauseStart
	}
	return pc.start.Add(real.Sub(pc.start) - pc.pausedTotal)
}

// Pause freezes game time; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedTotal += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused reports whether game time is frozen
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns the cumulative pause time including a running pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedTotal
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
