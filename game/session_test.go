package game

import (
	"slices"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/engine/mocks"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/system"
)

const frame = parameter.ReferenceFrame

// driver steps a session with a manual clock
type driver struct {
	t   *testing.T
	s   *Session
	now time.Time
}

func newDriver(t *testing.T, cfg Config) *driver {
	t.Helper()
	cfg.Start = engine.TestEpoch
	cfg.Seed = 7
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	return &driver{t: t, s: s, now: engine.TestEpoch}
}

func (d *driver) step(in component.Input) {
	d.now = d.now.Add(frame)
	d.s.Frame(in, d.now, frame)
}

func (d *driver) run(dur time.Duration) {
	for elapsed := time.Duration(0); elapsed < dur; elapsed += frame {
		d.step(component.Input{})
	}
}

// answerAll answers every question of the open quiz, correctly when right is set
func (d *driver) answerAll(right bool) {
	d.t.Helper()
	for i := 0; i < parameter.QuizQuestionCount; i++ {
		q, ok := d.s.Question()
		if !ok {
			d.t.Fatalf("question %d not shown", i)
		}
		choice := slices.Index(q.Choices[:], q.Answer)
		if !right {
			choice = (choice + 1) % len(q.Choices)
		}
		if !d.s.Answer(choice) {
			d.t.Fatalf("answer %d rejected", i)
		}
		d.run(parameter.QuizFeedbackDelay + frame)
	}
}

// passIntro runs the opening quiz and enters Level 1
func (d *driver) passIntro() {
	d.t.Helper()
	d.run(parameter.IntroQuizDelay + frame)
	if !d.s.QuizOpen() {
		d.t.Fatal("intro quiz not open")
	}
	d.answerAll(true)
	if d.s.QuizOpen() {
		d.t.Fatal("intro quiz still open")
	}
	d.step(component.Input{})
	if got := d.s.Stage(); got != "level1" {
		d.t.Fatalf("stage = %q, want level1", got)
	}
}

// clearWave defeats every active minion and runs one frame
func (d *driver) clearWave() {
	ctx := d.s.Context()
	for _, m := range ctx.State.ActiveMinions() {
		system.DefeatMinion(ctx, m)
	}
	d.step(component.Input{})
}

func TestSessionStartsInIntro(t *testing.T) {
	d := newDriver(t, Config{})
	ctx := d.s.Context()

	if d.s.Stage() != "intro" {
		t.Errorf("stage = %q, want intro", d.s.Stage())
	}
	if ctx.State.Phase != component.PhaseIntro || !ctx.State.MovementLocked {
		t.Error("intro must lock movement")
	}
	if len(ctx.State.Bolts) != len(ctx.Script.Pickups) {
		t.Errorf("pickups = %d, want %d", len(ctx.State.Bolts), len(ctx.Script.Pickups))
	}

	// Locked hero ignores input before the quiz
	x := ctx.Hero.X
	d.step(component.Input{Right: true})
	if ctx.Hero.X != x {
		t.Error("hero moved during intro")
	}

	d.run(parameter.IntroQuizDelay)
	if !d.s.QuizOpen() {
		t.Fatal("intro quiz not opened after delay")
	}
}

func TestSessionIntroQuizGrantsBolts(t *testing.T) {
	d := newDriver(t, Config{})
	d.passIntro()
	ctx := d.s.Context()

	want := parameter.QuizQuestionCount * parameter.QuizPointsPerCorrect
	if ctx.Hero.BoltCount != want || !ctx.Hero.HasBoltAttack {
		t.Errorf("bolts = %d attack=%v, want %d true", ctx.Hero.BoltCount, ctx.Hero.HasBoltAttack, want)
	}
	if ctx.State.MovementLocked {
		t.Error("movement still locked after intro")
	}
	if n := len(ctx.State.ActiveMinions()); n != parameter.QuotaLevel1 {
		t.Errorf("level 1 minions = %d, want %d", n, parameter.QuotaLevel1)
	}
}

func TestSessionLevelOneQuotaAdvances(t *testing.T) {
	d := newDriver(t, Config{})
	d.passIntro()
	ctx := d.s.Context()
	ctx.Hero.Health = 40

	minions := ctx.State.ActiveMinions()
	for i, m := range minions[:len(minions)-1] {
		system.DefeatMinion(ctx, m)
		d.step(component.Input{})
		if ctx.State.MinionsFought != i+1 || d.s.Stage() != "level1" {
			t.Fatalf("after %d defeats: fought=%d stage=%s", i+1, ctx.State.MinionsFought, d.s.Stage())
		}
	}

	system.DefeatMinion(ctx, minions[len(minions)-1])
	d.step(component.Input{})

	if d.s.Stage() != "level2" || ctx.State.CurrentLevel != 2 {
		t.Fatalf("stage=%s level=%d, want level2", d.s.Stage(), ctx.State.CurrentLevel)
	}
	if ctx.State.Minions != nil || ctx.State.MinionsFought != 0 {
		t.Errorf("minions=%d fought=%d, want cleared", len(ctx.State.Minions), ctx.State.MinionsFought)
	}
	if ctx.Hero.Health != parameter.HeroMaxHealth {
		t.Errorf("health = %d, want restored", ctx.Hero.Health)
	}

	d.run(parameter.WaveDelay + frame)
	if n := len(ctx.State.ActiveMinions()); n != parameter.QuotaLevel2 {
		t.Errorf("level 2 minions = %d, want %d", n, parameter.QuotaLevel2)
	}
}

func TestSessionFullProgression(t *testing.T) {
	d := newDriver(t, Config{})
	d.passIntro()
	ctx := d.s.Context()

	d.clearWave()
	d.run(parameter.WaveDelay + frame)
	d.clearWave()
	if d.s.Stage() != "level3" {
		t.Fatalf("stage = %s, want level3", d.s.Stage())
	}
	if len(ctx.State.Minions) != 0 {
		t.Fatal("level 3 must wait for the entry trigger")
	}

	// Walk onto the depot past the entry line
	h := ctx.Hero
	h.X, h.Y, h.VX, h.VY = ctx.Script.Level3EntryX+1, 6, 0, 0
	h.Grounded = true
	d.step(component.Input{})
	if d.s.Stage() != "stage1" || !ctx.State.Level3Entered {
		t.Fatalf("stage = %s, want stage1", d.s.Stage())
	}
	if n := len(ctx.State.ActiveMinions()); n != parameter.QuotaStage1 {
		t.Fatalf("stage 1 minions = %d, want %d", n, parameter.QuotaStage1)
	}

	platforms := len(ctx.State.Platforms)
	d.clearWave()
	if d.s.Stage() != "stage2" || h.Stage() != 2 {
		t.Fatalf("stage = %s hero stage %d, want stage2", d.s.Stage(), h.Stage())
	}
	d.run(parameter.WaveDelay + frame)
	if got := len(ctx.State.Platforms); got != platforms+len(ctx.Script.Stairs["a"]) {
		t.Errorf("platforms = %d, stairs a not solid", got)
	}

	d.clearWave()
	if d.s.Stage() != "stage3" {
		t.Fatalf("stage = %s, want stage3", d.s.Stage())
	}
	d.run(parameter.WaveDelay + frame)

	d.clearWave()
	if d.s.Stage() != "finale" || !ctx.State.AllGunmenDefeated {
		t.Fatalf("stage = %s, want finale with wall down", d.s.Stage())
	}
	if ctx.State.Background != ctx.Script.Background("finale") {
		t.Errorf("background = %q", ctx.State.Background)
	}

	d.run(parameter.FinalWaveDelay + frame)
	if !ctx.State.FinalWaveSpawned {
		t.Fatal("final wave not spawned")
	}
	d.clearWave()
	if d.s.Stage() != "end" || !ctx.State.FinalWaveCleared {
		t.Fatalf("stage = %s, want end", d.s.Stage())
	}
}

func TestSessionFallRequestsRestart(t *testing.T) {
	d := newDriver(t, Config{})
	d.passIntro()
	h := d.s.Context().Hero

	// Gap between the warehouse and the laundry
	h.X, h.Y, h.VY = 32, 1.42, 0
	h.Grounded = false
	d.step(component.Input{})
	if !h.Falling {
		t.Fatal("hero not falling")
	}

	d.run(parameter.RestartDelayFall - 2*frame)
	if d.s.RestartRequested() {
		t.Fatal("restart before delay")
	}
	d.run(3 * frame)
	if !d.s.RestartRequested() {
		t.Fatal("restart not requested")
	}
}

func TestSessionDrivesSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	ui := mocks.NewMockUISink(ctrl)
	audio := mocks.NewMockAudioSink(ctrl)

	ui.EXPECT().SetBackground("dusk").Times(1)
	ui.EXPECT().SetProgress(1, 0).Times(1)
	ui.EXPECT().ShowQuestion(gomock.Any(), 0, parameter.QuizQuestionCount).Times(1)
	ui.EXPECT().SetTint(engine.Tint{Color: parameter.ColorQuiz, Strength: 0.25}).Times(1)
	ui.EXPECT().SetHealth(1.0).MinTimes(1)
	ui.EXPECT().SetShield(1.0).MinTimes(1)
	ui.EXPECT().SetBolts(0).MinTimes(1)
	ui.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	audio.EXPECT().Play("skyline").Times(1)
	audio.EXPECT().Effect(gomock.Any()).AnyTimes()

	d := newDriver(t, Config{UI: ui, Audio: audio})
	d.run(parameter.IntroQuizDelay + frame)
	if !d.s.QuizOpen() {
		t.Fatal("quiz not open")
	}
}
