package engine

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine/task"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/level"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/status"
)

// GameContext holds every piece of session state a system may touch
// It is passed explicitly to all systems; only the frame loop goroutine may use it
type GameContext struct {
	SessionID string

	State  *component.GameState
	Hero   *component.Hero
	Script *level.Script

	Scheduler *task.Scheduler
	Events    *event.Queue

	Scene SceneSink
	UI    UISink
	Audio AudioSink

	Rand   *rand.Rand
	Status *status.Registry

	// Session owns tasks that live until restart; Level owns tasks cleared on level change
	Session *task.Group
	Level   *task.Group

	// Input is sampled once per frame
	Input component.Input

	// Start is the session start time; Now and Delta are set by BeginFrame
	Start     time.Time
	Now       time.Time
	Delta     time.Duration
	TimeScale float64
	Frame     uint64

	restartPending   bool
	restartRequested bool
}

// ContextConfig holds the collaborators of a new session
type ContextConfig struct {
	SessionID string
	Script    *level.Script
	Scene     SceneSink
	UI        UISink
	Audio     AudioSink
	Status    *status.Registry
	Seed      uint64
	Start     time.Time
}

// NewGameContext creates the state of a fresh session: intro phase, hero at the spawn point, platforms from the script
// Nil sinks are replaced by discarding implementations
func NewGameContext(cfg ContextConfig) *GameContext {
	if cfg.Scene == nil {
		cfg.Scene = NopScene{}
	}
	if cfg.UI == nil {
		cfg.UI = NopUI{}
	}
	if cfg.Audio == nil {
		cfg.Audio = NewSilentAudio()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	state := component.NewGameState()
	state.Platforms = cfg.Script.PlatformList()
	state.Background = cfg.Script.Background(level.SceneLevel1)

	session := task.NewGroup(nil)
	return &GameContext{
		SessionID: cfg.SessionID,
		State:     state,
		Hero:      component.NewHero(cfg.Script.HeroSpawn.X, cfg.Script.HeroSpawn.Y, state.Progress),
		Script:    cfg.Script,
		Scheduler: task.NewScheduler(cfg.Start),
		Events:    event.NewQueue(),
		Scene:     cfg.Scene,
		UI:        cfg.UI,
		Audio:     cfg.Audio,
		Rand:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		Status:    cfg.Status,
		Session:   session,
		Level:     task.NewGroup(session),
		Start:     cfg.Start,
		Now:       cfg.Start,
	}
}

// Elapsed returns the session time in seconds
func (c *GameContext) Elapsed() float64 {
	return c.Now.Sub(c.Start).Seconds()
}

// Close cancels every task of the session
func (c *GameContext) Close() {
	c.Session.Cancel()
}

// BeginFrame updates frame timing and advances the scheduler clock
func (c *GameContext) BeginFrame(now time.Time, dt time.Duration) {
	c.Now = now
	c.Delta = dt
	c.TimeScale = TimeScale(dt)
	c.Frame++
	c.Scheduler.Advance(now)
}

// TimeScale converts a frame delta to a multiple of the reference frame, clamped to [0, MaxTimeScale]
func TimeScale(dt time.Duration) float64 {
	s := float64(dt) / float64(parameter.ReferenceFrame)
	return max(0, min(parameter.MaxTimeScale, s))
}

// ResetLevelGroup cancels every task of the current level and opens a fresh level group
func (c *GameContext) ResetLevelGroup() {
	c.Level.Cancel()
	c.Level = task.NewGroup(c.Session)
}

// Emit queues an event for dispatch at the end of the frame
func (c *GameContext) Emit(t event.EventType, payload any) {
	c.Events.Push(t, payload)
}

// Notify queues a transient notification
func (c *GameContext) Notify(text string, color component.Color, d time.Duration) {
	c.Events.Push(event.EventNotification, &event.NotificationPayload{
		Text:     text,
		Color:    color,
		Duration: d,
	})
}

// RequestRestart schedules a session restart after delay
// Only the first request of a session takes effect
func (c *GameContext) RequestRestart(delay time.Duration) {
	if c.restartPending {
		return
	}
	c.restartPending = true
	c.Logf("restart in %v", delay)
	c.Scheduler.After(c.Session, delay, func() {
		c.restartRequested = true
	})
}

// RestartPending reports whether a restart has been scheduled
func (c *GameContext) RestartPending() bool {
	return c.restartPending
}

// RestartRequested reports whether the restart delay has elapsed
func (c *GameContext) RestartRequested() bool {
	return c.restartRequested
}

// Logf writes a session-tagged log line
func (c *GameContext) Logf(format string, args ...any) {
	id := c.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	log.Printf("[%s] "+format, append([]any{id}, args...)...)
}
