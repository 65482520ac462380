package system

import (
	"slices"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/engine/mocks"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/quiz"
)

// answer picks the right or a wrong choice for the current question and waits out the feedback delay
func answer(t *testing.T, ctx *engine.GameContext, g *QuizGate, right bool) {
	t.Helper()
	q, ok := g.Current()
	if !ok {
		t.Fatal("no question awaiting an answer")
	}
	choice := slices.Index(q.Choices[:], q.Answer)
	if !right {
		choice = (choice + 1) % len(q.Choices)
	}
	if !g.Answer(ctx, choice) {
		t.Fatal("answer rejected")
	}
	runFor(ctx, parameter.QuizFeedbackDelay+frameDT)
}

func completedPayload(t *testing.T, ctx *engine.GameContext) *event.QuizCompletedPayload {
	t.Helper()
	for _, ev := range ctx.Events.Consume() {
		if ev.Type == event.EventQuizCompleted {
			return ev.Payload.(*event.QuizCompletedPayload)
		}
	}
	t.Fatal("no quiz completed event")
	return nil
}

func TestQuizOpenLocksHero(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	g := NewQuizGate(ctx)
	ctx.Hero.VX = 0.2

	g.Open(ctx, quiz.KindBolt)
	h := ctx.Hero
	if !g.IsOpen() || g.Kind() != quiz.KindBolt {
		t.Fatal("gate not open")
	}
	if !ctx.State.MovementLocked || h.VX != 0 {
		t.Error("hero not held")
	}
	if !h.IsInvulnerable || h.InvulnerableKind != component.InvulnerableQuiz {
		t.Error("no quiz invulnerability")
	}
	if ApplyHeroDamage(ctx, component.MinionRifleMan).Applied {
		t.Error("hero damaged during quiz")
	}
}

func TestQuizRewards(t *testing.T) {
	tests := []struct {
		name       string
		kind       quiz.Kind
		shield     int
		bolts      int
		pattern    []bool
		wantBolts  int
		wantShield int
	}{
		{"bolt two of three", quiz.KindBolt, 100, 1, []bool{true, false, true}, 5, 100},
		{"bolt none", quiz.KindBolt, 100, 0, []bool{false, false, false}, 0, 100},
		{"shield two of three from full", quiz.KindShield, 100, 0, []bool{true, true, false}, 0, 100},
		{"shield two of three from zero", quiz.KindShield, 0, 0, []bool{false, true, true}, 0, 100},
		{"shield one", quiz.KindShield, 0, 0, []bool{true, false, false}, 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := engine.NewTestGameContext(nil)
			g := NewQuizGate(ctx)
			h := ctx.Hero
			h.SetShield(tt.shield)
			h.BoltCount = tt.bolts

			g.Open(ctx, tt.kind)
			for _, right := range tt.pattern {
				answer(t, ctx, g, right)
			}

			if g.IsOpen() {
				t.Fatal("quiz still open")
			}
			if h.BoltCount != tt.wantBolts || h.ShieldHealth != tt.wantShield {
				t.Errorf("bolts=%d shield=%d, want %d %d", h.BoltCount, h.ShieldHealth, tt.wantBolts, tt.wantShield)
			}
			if ctx.State.MovementLocked {
				t.Error("movement still locked")
			}
			if h.InvulnerableKind != component.InvulnerableDamage {
				t.Errorf("invulnerability kind = %v, want grace window", h.InvulnerableKind)
			}

			correct := 0
			for _, r := range tt.pattern {
				if r {
					correct++
				}
			}
			p := completedPayload(t, ctx)
			if p.Correct != correct || p.Earned != quiz.Points(correct) || p.Total != parameter.QuizQuestionCount {
				t.Errorf("payload = %+v", p)
			}
		})
	}
}

func TestQuizAnswerGuards(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	g := NewQuizGate(ctx)
	if g.Answer(ctx, 0) {
		t.Error("answer accepted while closed")
	}

	g.Open(ctx, quiz.KindBolt)
	if !g.Answer(ctx, 0) {
		t.Fatal("first answer rejected")
	}
	if g.Answer(ctx, 0) {
		t.Error("second answer accepted during feedback delay")
	}
	if _, ok := g.Current(); ok {
		t.Error("question shown during feedback delay")
	}
}

func TestQuizQueue(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	g := NewQuizGate(ctx)
	h := ctx.Hero
	h.SetShield(0)

	g.HandleEvent(ctx, event.GameEvent{Type: event.EventBoltsDepleted})
	g.HandleEvent(ctx, event.GameEvent{Type: event.EventShieldDepleted})
	g.HandleEvent(ctx, event.GameEvent{Type: event.EventShieldDepleted})
	g.HandleEvent(ctx, event.GameEvent{Type: event.EventQuizRequest, Payload: &event.QuizRequestPayload{Kind: quiz.KindBolt}})
	if g.Kind() != quiz.KindBolt {
		t.Fatalf("kind = %v, want bolt first", g.Kind())
	}

	for range parameter.QuizQuestionCount {
		answer(t, ctx, g, true)
	}
	runFor(ctx, parameter.QuizRequeueDelay+frameDT)

	if !g.IsOpen() || g.Kind() != quiz.KindShield {
		t.Fatalf("open=%v kind=%v, want queued shield quiz", g.IsOpen(), g.Kind())
	}
	for range parameter.QuizQuestionCount {
		answer(t, ctx, g, true)
	}
	runFor(ctx, parameter.QuizRequeueDelay+frameDT)
	if g.IsOpen() {
		t.Error("quiz reopened after queue drained")
	}
}

func TestQueuedQuizSkippedWhenNoLongerNeeded(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	g := NewQuizGate(ctx)
	ctx.Hero.SetShield(0)

	g.Open(ctx, quiz.KindBolt)
	g.Open(ctx, quiz.KindShield)
	for range parameter.QuizQuestionCount {
		answer(t, ctx, g, true)
	}
	ctx.Hero.SetShield(50)
	runFor(ctx, parameter.QuizRequeueDelay+frameDT)

	if g.IsOpen() {
		t.Error("shield quiz opened with shield up")
	}
}

func TestQuizNotOpenedForFallingHero(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	g := NewQuizGate(ctx)
	ctx.Hero.Falling = true
	g.Open(ctx, quiz.KindShield)
	if g.IsOpen() {
		t.Error("quiz opened while falling")
	}
}

func TestQuizDrivesUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	ui := mocks.NewMockUISink(ctrl)

	ctx := engine.NewTestGameContext(nil)
	ctx.UI = ui
	g := NewQuizGate(ctx)

	gomock.InOrder(
		ui.EXPECT().ShowQuestion(gomock.Any(), 0, parameter.QuizQuestionCount),
		ui.EXPECT().ShowQuestion(gomock.Any(), 1, parameter.QuizQuestionCount),
		ui.EXPECT().ShowQuestion(gomock.Any(), 2, parameter.QuizQuestionCount),
		ui.EXPECT().HideQuiz(),
	)

	g.Open(ctx, quiz.KindBolt)
	for range parameter.QuizQuestionCount {
		answer(t, ctx, g, true)
	}
}
