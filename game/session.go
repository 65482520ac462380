// Package game assembles a playable session from the gameplay systems and drives it one frame at a time
package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/level"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/quiz"
	"github.com/lixenwraith/rooftop-fighter/status"
	"github.com/lixenwraith/rooftop-fighter/system"
)

// Config holds the collaborators of a session
type Config struct {
	Script *level.Script
	Scene  engine.SceneSink
	UI     engine.UISink
	Audio  engine.AudioSink
	Status *status.Registry
	Seed   uint64
	Start  time.Time
}

// Session is one run from the intro quiz to restart
// All methods must be called from the frame loop goroutine
type Session struct {
	ctx    *engine.GameContext
	router *event.Router[*engine.GameContext]

	// gameplay runs before the scheduler and event dispatch, present after them
	gameplay []engine.System
	present  []engine.System

	motion      *system.MotionSystem
	combat      *system.CombatSystem
	quiz        *system.QuizGate
	progression *system.ProgressionSystem

	statFrames  *atomic.Int64
	statActive  *atomic.Int64
	statTasks   *atomic.Int64
	statFrameMs *status.AtomicFloat
}

// NewSession builds the scene, registers systems and handlers and enters the intro
func NewSession(cfg Config) (*Session, error) {
	if cfg.Script == nil {
		s, err := level.Default()
		if err != nil {
			return nil, fmt.Errorf("default level: %w", err)
		}
		cfg.Script = s
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Now()
	}

	ctx := engine.NewGameContext(engine.ContextConfig{
		SessionID: uuid.NewString(),
		Script:    cfg.Script,
		Scene:     cfg.Scene,
		UI:        cfg.UI,
		Audio:     cfg.Audio,
		Status:    cfg.Status,
		Seed:      cfg.Seed,
		Start:     cfg.Start,
	})

	progression, err := system.NewProgressionSystem()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ctx:         ctx,
		router:      event.NewRouter[*engine.GameContext](ctx.Events),
		motion:      system.NewMotionSystem(),
		combat:      system.NewCombatSystem(ctx),
		quiz:        system.NewQuizGate(ctx),
		progression: progression,
		statFrames:  ctx.Status.Ints.Get(status.KeyFrames),
		statActive:  ctx.Status.Ints.Get(status.KeyMinionsActive),
		statTasks:   ctx.Status.Ints.Get(status.KeyTasks),
		statFrameMs: ctx.Status.Floats.Get(status.KeyFrameMillis),
	}

	s.gameplay = []engine.System{
		s.motion,
		s.combat,
		system.NewMinionSystem(),
		system.NewCollectibleSystem(),
		s.progression,
	}
	feedback := system.NewFeedbackSystem()
	s.present = []engine.System{
		system.NewVisualSystem(),
		feedback,
	}

	s.router.Register(s.quiz)
	s.router.Register(system.NewLifecycleSystem())
	s.router.Register(s.progression)
	s.router.Register(feedback)

	s.buildScene()
	if err := s.progression.Init(ctx); err != nil {
		return nil, fmt.Errorf("progression init: %w", err)
	}
	ctx.Status.Strings.Get(status.KeyPhase).Store(s.progression.ActiveName())
	ctx.Status.Ints.Get(status.KeyLevel).Store(int64(ctx.State.CurrentLevel))
	ctx.Logf("session started, seed %d", cfg.Seed)
	return s, nil
}

func (s *Session) buildScene() {
	ctx := s.ctx
	for _, p := range ctx.State.Platforms {
		ctx.Scene.Add(system.PlatformNode(component.NodePlatform, p, parameter.ColorRooftop))
	}
	system.SpawnPickups(ctx)
	ctx.Scene.Add(ctx.Hero.Node)
	ctx.UI.SetBackground(ctx.State.Background)
	ctx.UI.SetProgress(ctx.State.CurrentLevel, ctx.Hero.Stage())
}

// Frame advances the session by dt with the sampled input
func (s *Session) Frame(in component.Input, now time.Time, dt time.Duration) {
	ctx := s.ctx
	began := time.Now()

	ctx.BeginFrame(now, dt)
	ctx.Input = in
	for _, sys := range s.gameplay {
		sys.Update(ctx)
	}
	ctx.Scheduler.Run()
	s.router.DispatchAll(ctx)
	for _, sys := range s.present {
		sys.Update(ctx)
	}

	s.statFrames.Add(1)
	s.statActive.Store(int64(len(ctx.State.ActiveMinions())))
	s.statTasks.Store(int64(ctx.Scheduler.Len()))
	s.statFrameMs.Set(float64(time.Since(began).Microseconds()) / 1000)
}

// Answer forwards a quiz choice; returns false when no question is awaiting one
func (s *Session) Answer(choice int) bool {
	return s.quiz.Answer(s.ctx, choice)
}

// QuizOpen reports whether the quiz gate holds the hero
func (s *Session) QuizOpen() bool {
	return s.quiz.IsOpen()
}

// Question returns the quiz question awaiting an answer
func (s *Session) Question() (quiz.Question, bool) {
	return s.quiz.Current()
}

// Stage returns the name of the active progression state
func (s *Session) Stage() string {
	return s.progression.ActiveName()
}

// RestartRequested reports whether the session ended and should be replaced
func (s *Session) RestartRequested() bool {
	return s.ctx.RestartRequested()
}

// Context exposes the session state to renderers and tests
func (s *Session) Context() *engine.GameContext {
	return s.ctx
}

// Close cancels every task of the session
func (s *Session) Close() {
	s.ctx.Logf("session closed at %s", s.progression.ActiveName())
	s.ctx.Close()
}
