package system

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/quiz"
	"github.com/lixenwraith/rooftop-fighter/status"
)

// QuizGate runs the arithmetic quiz that refills bolts or shield
//
// Lifecycle:
//   - Open locks movement and grants quiz invulnerability
//   - Questions are shown one at a time; Answer records a choice and schedules the next question
//   - Completion applies the reward and releases the hero regardless of score
//   - A request while a quiz is open is queued, at most once per kind
type QuizGate struct {
	open      bool
	awaiting  bool
	kind      quiz.Kind
	questions []quiz.Question
	index     int
	correct   int
	queue     []quiz.Kind

	statAsked   *atomic.Int64
	statCorrect *atomic.Int64
}

// NewQuizGate creates a closed quiz gate
func NewQuizGate(ctx *engine.GameContext) *QuizGate {
	return &QuizGate{
		statAsked:   ctx.Status.Ints.Get(status.KeyQuizAsked),
		statCorrect: ctx.Status.Ints.Get(status.KeyQuizCorrect),
	}
}

func (g *QuizGate) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventQuizRequest,
		event.EventBoltsDepleted,
		event.EventShieldDepleted,
	}
}

func (g *QuizGate) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	switch ev.Type {
	case event.EventQuizRequest:
		if p, ok := ev.Payload.(*event.QuizRequestPayload); ok {
			g.Open(ctx, p.Kind)
		}
	case event.EventBoltsDepleted:
		g.Open(ctx, quiz.KindBolt)
	case event.EventShieldDepleted:
		g.Open(ctx, quiz.KindShield)
	}
}

// IsOpen reports whether a quiz is in progress
func (g *QuizGate) IsOpen() bool {
	return g.open
}

// Kind returns the kind of the open quiz
func (g *QuizGate) Kind() quiz.Kind {
	return g.kind
}

// Current returns the question awaiting an answer
func (g *QuizGate) Current() (quiz.Question, bool) {
	if !g.open || !g.awaiting {
		return quiz.Question{}, false
	}
	return g.questions[g.index], true
}

// Open starts a quiz of kind, or queues it when one is already open
func (g *QuizGate) Open(ctx *engine.GameContext, kind quiz.Kind) {
	if ctx.Hero.Dead || ctx.Hero.Falling {
		return
	}
	if g.open {
		if kind != g.kind && !slices.Contains(g.queue, kind) {
			g.queue = append(g.queue, kind)
		}
		return
	}

	g.open = true
	g.kind = kind
	g.questions = quiz.GenerateSet(ctx.Rand)
	g.index = 0
	g.correct = 0

	h := ctx.Hero
	ctx.State.MovementLocked = true
	h.VX = 0
	h.GrantInvulnerability(component.InvulnerableQuiz, parameter.QuizInvulnerability)

	ctx.Emit(event.EventQuizStarted, &event.QuizRequestPayload{Kind: kind})
	ctx.Logf("%s quiz opened", kind)
	g.show(ctx)
}

func (g *QuizGate) show(ctx *engine.GameContext) {
	g.awaiting = true
	g.statAsked.Add(1)
	ctx.UI.ShowQuestion(g.questions[g.index], g.index, len(g.questions))
}

// Answer records the choice for the current question
// Returns false when no question is awaiting an answer
func (g *QuizGate) Answer(ctx *engine.GameContext, choice int) bool {
	if !g.open || !g.awaiting {
		return false
	}
	g.awaiting = false

	q := g.questions[g.index]
	if q.Correct(choice) {
		g.correct++
		g.statCorrect.Add(1)
		ctx.Emit(event.EventSoundRequest, &event.SoundPayload{Name: parameter.SoundCorrect})
		ctx.Notify("Correct!", parameter.ColorGood, parameter.QuizFeedbackDelay)
	} else {
		ctx.Emit(event.EventSoundRequest, &event.SoundPayload{Name: parameter.SoundWrong})
		ctx.Notify(fmt.Sprintf("Wrong, %d × %d = %d", q.A, q.B, q.Answer), parameter.ColorWarn, parameter.QuizFeedbackDelay)
	}

	g.index++
	ctx.Scheduler.After(ctx.Session, parameter.QuizFeedbackDelay, func() {
		if g.index < len(g.questions) {
			g.show(ctx)
			return
		}
		g.complete(ctx)
	})
	return true
}

func (g *QuizGate) complete(ctx *engine.GameContext) {
	h := ctx.Hero
	earned := quiz.Points(g.correct)
	switch g.kind {
	case quiz.KindBolt:
		h.BoltCount += earned
		h.HasBoltAttack = true
	case quiz.KindShield:
		h.SetShield(quiz.RestoredShield(h.ShieldHealth, earned))
	}

	ctx.UI.HideQuiz()
	ctx.State.MovementLocked = false
	h.ClearInvulnerability()
	h.GrantInvulnerability(component.InvulnerableDamage, parameter.QuizGraceInvulnerability)
	g.open = false
	g.awaiting = false

	ctx.Emit(event.EventQuizCompleted, &event.QuizCompletedPayload{
		Kind:    g.kind,
		Correct: g.correct,
		Total:   len(g.questions),
		Earned:  earned,
	})
	ctx.Logf("%s quiz done: %d/%d correct, +%d", g.kind, g.correct, len(g.questions), earned)

	if len(g.queue) > 0 {
		next := g.queue[0]
		g.queue = g.queue[1:]
		ctx.Scheduler.After(ctx.Session, parameter.QuizRequeueDelay, func() {
			if needsQuiz(ctx, next) {
				g.Open(ctx, next)
			}
		})
	}
}

// needsQuiz reports whether a queued quiz is still useful once its turn comes
func needsQuiz(ctx *engine.GameContext, kind quiz.Kind) bool {
	if kind == quiz.KindShield {
		return ctx.Hero.ShieldHealth == 0
	}
	return ctx.Hero.BoltCount == 0
}
