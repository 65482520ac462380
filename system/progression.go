package system

import (
	"fmt"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/engine/fsm"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/level"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/quiz"
	"github.com/lixenwraith/rooftop-fighter/status"
)

// Progression states, entered in this order and never revisited
const (
	StateIntro fsm.StateID = iota + 1
	StateLevel1
	StateLevel2
	StateLevel3
	StateStage1
	StateStage2
	StateStage3
	StateFinale
	StateEnd
)

// ProgressionSystem drives the Level and Stage sequence
//
// Transitions are quota based: a wave is cleared when the fight counter reaches its spawn count.
// The only spatial trigger is the one-shot Level 3 entry that starts Stage 1.
// Each state's enter action flips its GameState flag, so every transition happens exactly once.
type ProgressionSystem struct {
	machine *fsm.Machine[*engine.GameContext]
}

// NewProgressionSystem builds the progression machine
func NewProgressionSystem() (*ProgressionSystem, error) {
	m := fsm.NewMachine[*engine.GameContext]()
	s := &ProgressionSystem{machine: m}

	states := []struct {
		id    fsm.StateID
		name  string
		enter fsm.ActionFunc[*engine.GameContext]
	}{
		{StateIntro, "intro", enterIntro},
		{StateLevel1, "level1", enterLevel1},
		{StateLevel2, "level2", enterLevel2},
		{StateLevel3, "level3", enterLevel3},
		{StateStage1, "stage1", enterStage1},
		{StateStage2, "stage2", enterStage2},
		{StateStage3, "stage3", enterStage3},
		{StateFinale, "finale", enterFinale},
		{StateEnd, "end", enterEnd},
	}
	for _, st := range states {
		if err := m.AddState(st.id, st.name, st.enter); err != nil {
			return nil, fmt.Errorf("progression: %w", err)
		}
	}

	transitions := []struct {
		from, to fsm.StateID
		guard    fsm.GuardFunc[*engine.GameContext]
	}{
		{StateIntro, StateLevel1, inGameplay},
		{StateLevel1, StateLevel2, waveCleared(level.WaveLevel1)},
		{StateLevel2, StateLevel3, waveCleared(level.WaveLevel2)},
		{StateLevel3, StateStage1, enteredLevel3},
		{StateStage1, StateStage2, waveCleared(level.WaveStage1)},
		{StateStage2, StateStage3, waveCleared(level.WaveStage2)},
		{StateStage3, StateFinale, waveCleared(level.WaveStage3)},
		{StateFinale, StateEnd, finalWaveCleared},
	}
	for _, tr := range transitions {
		if err := m.AddTransition(tr.from, tr.to, tr.guard); err != nil {
			return nil, fmt.Errorf("progression: %w", err)
		}
	}
	return s, nil
}

func (s *ProgressionSystem) Name() string {
	return "progression"
}

// Init enters the intro state and schedules the opening bolt quiz
func (s *ProgressionSystem) Init(ctx *engine.GameContext) error {
	return s.machine.Init(ctx, StateIntro)
}

func (s *ProgressionSystem) Update(ctx *engine.GameContext) {
	if s.machine.Update(ctx, ctx.Delta) {
		ctx.Logf("progression -> %s", s.machine.ActiveName())
		ctx.Status.Strings.Get(status.KeyPhase).Store(s.machine.ActiveName())
		ctx.Status.Ints.Get(status.KeyLevel).Store(int64(ctx.State.CurrentLevel))
	}
}

// Active returns the current progression state
func (s *ProgressionSystem) Active() fsm.StateID {
	return s.machine.Active()
}

// ActiveName returns the current progression state name
func (s *ProgressionSystem) ActiveName() string {
	return s.machine.ActiveName()
}

func (s *ProgressionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventQuizCompleted}
}

// HandleEvent starts gameplay when the intro quiz completes
func (s *ProgressionSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	if ev.Type == event.EventQuizCompleted && ctx.State.Phase == component.PhaseIntro {
		ctx.State.Phase = component.PhaseGameplay
	}
}

// Guards

func inGameplay(ctx *engine.GameContext) bool {
	return ctx.State.Phase == component.PhaseGameplay
}

func waveCleared(name string) fsm.GuardFunc[*engine.GameContext] {
	return func(ctx *engine.GameContext) bool {
		if ctx.Hero.Dead {
			return false
		}
		w, ok := ctx.Script.Wave(name)
		return ok && ctx.State.MinionsSpawned && ctx.State.MinionsFought >= w.Quota()
	}
}

func enteredLevel3(ctx *engine.GameContext) bool {
	return !ctx.Hero.Dead && ctx.Hero.X >= ctx.Script.Level3EntryX
}

func finalWaveCleared(ctx *engine.GameContext) bool {
	return ctx.State.FinalWaveSpawned && waveCleared(level.WaveFinale)(ctx)
}

// Enter actions

func enterIntro(ctx *engine.GameContext) {
	ctx.State.Phase = component.PhaseIntro
	ctx.State.MovementLocked = true
	PlayTrack(ctx, ctx.Script.Track(level.SceneLevel1))
	ctx.Notify("Rooftop Fighter", parameter.ColorLevel, parameter.IntroQuizDelay)
	ctx.Scheduler.After(ctx.Session, parameter.IntroQuizDelay, func() {
		ctx.Emit(event.EventQuizRequest, &event.QuizRequestPayload{Kind: quiz.KindBolt})
	})
}

func enterLevel1(ctx *engine.GameContext) {
	ctx.State.CurrentLevel = 1
	if err := SpawnWave(ctx, level.WaveLevel1); err != nil {
		ctx.Logf("level 1: %v", err)
	}
	announceLevel(ctx, "Level 1")
}

func enterLevel2(ctx *engine.GameContext) {
	changeLevel(ctx, 2, level.SceneLevel2)
	ScheduleWave(ctx, level.WaveLevel2, parameter.WaveDelay, nil)
	announceLevel(ctx, "Level 2")
}

// enterLevel3 only clears Level 2; the Stage 1 wave waits for the entry trigger
func enterLevel3(ctx *engine.GameContext) {
	changeLevel(ctx, 3, level.SceneLevel3)
	ctx.State.Progress.CurrentStage = 1
	announceLevel(ctx, "Level 3: cross the depot")
}

func enterStage1(ctx *engine.GameContext) {
	ctx.State.Level3Entered = true
	if err := SpawnWave(ctx, level.WaveStage1); err != nil {
		ctx.Logf("stage 1: %v", err)
	}
	announceStage(ctx, 1, "Stage 1: gunmen ahead")
}

func enterStage2(ctx *engine.GameContext) {
	ctx.State.HasDefeatedStage1 = true
	ClearMinions(ctx)
	RevealStairs(ctx, "a")
	ctx.State.Progress.CurrentStage = 2
	ScheduleWave(ctx, level.WaveStage2, parameter.WaveDelay, nil)
	announceStage(ctx, 2, "Stage 2: stairs revealed")
}

func enterStage3(ctx *engine.GameContext) {
	ctx.State.HasDefeatedStage2 = true
	ClearMinions(ctx)
	RevealStairs(ctx, "b")
	ctx.State.Progress.CurrentStage = 3
	ScheduleWave(ctx, level.WaveStage3, parameter.WaveDelay, nil)
	announceStage(ctx, 3, "Stage 3: riflemen on the roof")
}

// enterFinale opens the wall, swaps the backdrop, crossfades the music and sends the last wave
func enterFinale(ctx *engine.GameContext) {
	st := ctx.State
	st.HasDefeatedStage3 = true
	st.AllGunmenDefeated = true
	st.StageTransitioned = true
	ClearMinions(ctx)

	st.Background = ctx.Script.Background(level.SceneFinale)
	ctx.UI.SetBackground(st.Background)
	Crossfade(ctx, ctx.Script.Track(level.SceneFinale))
	ctx.Notify("The wall is down", parameter.ColorGood, parameter.NotifyLong)

	ScheduleWave(ctx, level.WaveFinale, parameter.FinalWaveDelay, func() {
		st.FinalWaveSpawned = true
		ctx.Notify("Final wave!", parameter.ColorDanger, parameter.NotifyLong)
	})
}

// enterEnd is the end of the content; gameplay continues with nothing left to fight
func enterEnd(ctx *engine.GameContext) {
	ctx.State.FinalWaveCleared = true
	ctx.Notify("To be continued...", parameter.ColorLevel, parameter.NotifyLong)
}

// changeLevel clears the previous level's minions and tasks and restores health
func changeLevel(ctx *engine.GameContext, n int, scene string) {
	ClearMinions(ctx)
	ctx.ResetLevelGroup()
	ctx.Hero.Health = parameter.HeroMaxHealth
	ctx.State.CurrentLevel = n
	ctx.State.Background = ctx.Script.Background(scene)
	ctx.UI.SetBackground(ctx.State.Background)
	PlayTrack(ctx, ctx.Script.Track(scene))
}

func announceLevel(ctx *engine.GameContext, title string) {
	ctx.Emit(event.EventLevelChanged, &event.ProgressPayload{
		Level: ctx.State.CurrentLevel,
		Stage: ctx.Hero.Stage(),
		Title: title,
		Color: parameter.ColorLevel,
	})
}

func announceStage(ctx *engine.GameContext, stage int, title string) {
	ctx.Emit(event.EventStageChanged, &event.ProgressPayload{
		Level: ctx.State.CurrentLevel,
		Stage: stage,
		Title: title,
		Color: parameter.ColorLevel,
	})
}
