package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

func TestNewGameContextStartsInIntro(t *testing.T) {
	ctx := NewTestGameContext(nil)
	fresh := NewGameContext(ContextConfig{Script: ctx.Script, Start: TestEpoch})

	if fresh.State.Phase != component.PhaseIntro || !fresh.State.MovementLocked {
		t.Errorf("phase=%v locked=%v, want intro locked", fresh.State.Phase, fresh.State.MovementLocked)
	}
	if fresh.State.CurrentLevel != 1 {
		t.Errorf("level = %d, want 1", fresh.State.CurrentLevel)
	}
	if fresh.Hero.Progress != fresh.State.Progress {
		t.Error("hero progress not shared with game state")
	}
	if len(fresh.State.Platforms) != len(ctx.Script.Platforms) {
		t.Errorf("platforms = %d, want %d", len(fresh.State.Platforms), len(ctx.Script.Platforms))
	}
	if fresh.Audio.Volume() != 1 {
		t.Errorf("default audio volume = %v", fresh.Audio.Volume())
	}
}

func TestRequestRestartOnce(t *testing.T) {
	ctx := NewTestGameContext(nil)
	ctx.RequestRestart(parameter.RestartDelayFall)
	ctx.RequestRestart(time.Millisecond)

	ctx.Advance(time.Second)
	ctx.Scheduler.Run()
	if ctx.RestartRequested() {
		t.Fatal("restart fired before delay")
	}

	ctx.Advance(parameter.RestartDelayFall)
	ctx.Scheduler.Run()
	if !ctx.RestartRequested() {
		t.Fatal("restart not requested after delay")
	}
}

func TestResetLevelGroup(t *testing.T) {
	ctx := NewTestGameContext(nil)
	old := ctx.Level
	runs := 0
	ctx.Scheduler.Every(old, func(time.Time, time.Duration) bool {
		runs++
		return false
	})

	ctx.ResetLevelGroup()
	ctx.Scheduler.Run()
	if runs != 0 || !old.Canceled() {
		t.Errorf("old level task ran %d times", runs)
	}
	if ctx.Level.Canceled() || ctx.Session.Canceled() {
		t.Error("fresh level or session group cancelled")
	}

	ctx.Close()
	if !ctx.Level.Canceled() {
		t.Error("Close did not cascade to level group")
	}
}

func TestNotifyQueuesEvent(t *testing.T) {
	ctx := NewTestGameContext(nil)
	ctx.Notify("hello", parameter.ColorInfo, time.Second)
	evs := ctx.Events.Consume()
	if len(evs) != 1 || evs[0].Type != event.EventNotification {
		t.Fatalf("events = %+v", evs)
	}
	p := evs[0].Payload.(*event.NotificationPayload)
	if p.Text != "hello" || p.Duration != time.Second {
		t.Errorf("payload = %+v", p)
	}
}
