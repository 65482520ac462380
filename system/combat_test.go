package system

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/event"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

func TestAttackWithoutBolts(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	cs := NewCombatSystem(ctx)
	h := ctx.Hero
	h.HasBoltAttack = true
	h.BoltCount = 0
	m := addMinion(ctx, "m1", component.MinionPlain, 1, h.X+3, h.Y)

	ctx.Advance(frameDT)
	if got := cs.Attack(ctx); got != AttackOutOfBolts {
		t.Fatalf("attack = %v, want out of bolts", got)
	}
	if got := cs.Attack(ctx); got != AttackOutOfBolts {
		t.Fatalf("second attack = %v", got)
	}

	if m.Health != parameter.MinionMaxHealth {
		t.Errorf("minion damaged: %d", m.Health)
	}
	if h.BoltCount != 0 || !h.LastAttack.IsZero() {
		t.Errorf("bolts=%d lastAttack=%v, want untouched", h.BoltCount, h.LastAttack)
	}
	if ctx.Scheduler.Len() != 0 {
		t.Errorf("bolt shot spawned: %d tasks", ctx.Scheduler.Len())
	}
	counts := drain(ctx)
	if counts[event.EventOutOfBolts] != 1 || counts[event.EventBoltFired] != 0 {
		t.Errorf("events = %v, want one out-of-bolts", counts)
	}
}

func TestOutOfBoltsFeedbackResetsOnRelease(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	cs := NewCombatSystem(ctx)
	ctx.Hero.HasBoltAttack = true
	addMinion(ctx, "m1", component.MinionPlain, 1, ctx.Hero.X+3, ctx.Hero.Y)

	press := []bool{true, true, false, true}
	for _, held := range press {
		ctx.Advance(frameDT)
		ctx.Input = component.Input{Attack: held}
		cs.Update(ctx)
	}
	if n := drain(ctx)[event.EventOutOfBolts]; n != 2 {
		t.Errorf("out-of-bolts events = %d, want 2", n)
	}
}

func TestAttackFires(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	cs := NewCombatSystem(ctx)
	h := ctx.Hero
	h.HasBoltAttack = true
	h.BoltCount = 3
	far := addMinion(ctx, "far", component.MinionPlain, 1, h.X+8, h.Y)
	near := addMinion(ctx, "near", component.MinionPlain, 1, h.X-2, h.Y)

	ctx.Advance(frameDT)
	if got := cs.Attack(ctx); got != AttackFired {
		t.Fatalf("attack = %v, want fired", got)
	}
	if near.Health != parameter.MinionMaxHealth-parameter.BoltDamage || far.Health != parameter.MinionMaxHealth {
		t.Errorf("near=%d far=%d, nearest not targeted", near.Health, far.Health)
	}
	if h.BoltCount != 2 || h.FacingRight {
		t.Errorf("bolts=%d facingRight=%v", h.BoltCount, h.FacingRight)
	}

	ctx.Advance(frameDT)
	if got := cs.Attack(ctx); got != AttackCooldown {
		t.Errorf("attack within cooldown = %v", got)
	}

	ctx.Advance(parameter.AttackCooldown)
	if got := cs.Attack(ctx); got != AttackFired {
		t.Fatalf("attack after cooldown = %v", got)
	}
	if !near.Defeated || ctx.State.MinionsFought != 1 {
		t.Errorf("near defeated=%v fought=%d", near.Defeated, ctx.State.MinionsFought)
	}
}

func TestAttackBlocked(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx *engine.GameContext)
		want  AttackResult
	}{
		{"no bolt attack", func(ctx *engine.GameContext) { ctx.Hero.HasBoltAttack = false }, AttackNone},
		{"locked", func(ctx *engine.GameContext) { ctx.State.MovementLocked = true }, AttackNone},
		{"dead", func(ctx *engine.GameContext) { ctx.Hero.Dead = true }, AttackNone},
		{"out of range", func(ctx *engine.GameContext) { ctx.State.Minions[0].X += parameter.AttackRange }, AttackNoTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := engine.NewTestGameContext(nil)
			ctx.Hero.HasBoltAttack = true
			ctx.Hero.BoltCount = 1
			addMinion(ctx, "m1", component.MinionPlain, 1, ctx.Hero.X+3, ctx.Hero.Y)
			tt.setup(ctx)

			ctx.Advance(frameDT)
			if got := NewCombatSystem(ctx).Attack(ctx); got != tt.want {
				t.Errorf("attack = %v, want %v", got, tt.want)
			}
			if ctx.Hero.BoltCount != 1 {
				t.Errorf("bolts = %d, want 1", ctx.Hero.BoltCount)
			}
		})
	}
}

func TestLastBoltRequestsQuiz(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	cs := NewCombatSystem(ctx)
	h := ctx.Hero
	h.HasBoltAttack = true
	h.BoltCount = 1
	addMinion(ctx, "m1", component.MinionPlain, 1, h.X+3, h.Y)
	addMinion(ctx, "m2", component.MinionPlain, 1, h.X+5, h.Y)

	ctx.Advance(frameDT)
	cs.Attack(ctx)
	if n := drain(ctx)[event.EventBoltsDepleted]; n != 1 {
		t.Errorf("bolts depleted events = %d, want 1", n)
	}
}

func TestDefeatExactlyOnce(t *testing.T) {
	ctx := engine.NewTestGameContext(nil)
	m := addMinion(ctx, "m1", component.MinionGunMan, 3, ctx.Hero.X+3, ctx.Hero.Y)
	m.Health = 50
	pr := FireProjectile(ctx, m)
	drain(ctx)

	if !DamageMinion(ctx, m, 60) {
		t.Fatal("damage not applied")
	}
	if !m.Defeated || m.Active || m.Health != 0 {
		t.Errorf("defeated=%v active=%v health=%d", m.Defeated, m.Active, m.Health)
	}
	if !m.Tasks.Canceled() || !pr.Done || len(ctx.State.Projectiles) != 0 {
		t.Error("minion effects not cleaned up")
	}

	if DamageMinion(ctx, m, 60) {
		t.Error("defeated minion took damage")
	}
	DefeatMinion(ctx, m)

	if ctx.State.MinionsFought != 1 {
		t.Errorf("fought = %d, want 1", ctx.State.MinionsFought)
	}
	if n := drain(ctx)[event.EventMinionDefeated]; n != 1 {
		t.Errorf("defeat events = %d, want 1", n)
	}
}

func TestNearestMinion(t *testing.T) {
	mk := func(id string, x float64, defeated bool) *component.Minion {
		m := component.NewMinion(id, component.MinionPlain, 1, x, 0, nil)
		m.Defeated = defeated
		return m
	}
	tests := []struct {
		name    string
		minions []*component.Minion
		want    string
	}{
		{"empty", nil, ""},
		{"closest wins", []*component.Minion{mk("a", 5, false), mk("b", -2, false)}, "b"},
		{"first on tie", []*component.Minion{mk("a", 3, false), mk("b", -3, false)}, "a"},
		{"skips defeated", []*component.Minion{mk("a", 1, true), mk("b", 4, false)}, "b"},
		{"range exclusive", []*component.Minion{mk("a", 10, false)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestMinion(tt.minions, 0, 0, 10)
			id := ""
			if got != nil {
				id = got.ID
			}
			if id != tt.want {
				t.Errorf("nearest = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestApplyHeroDamage(t *testing.T) {
	tests := []struct {
		name       string
		shield     int
		health     int
		mt         component.MinionType
		wantShield int
		wantHealth int
		depleted   bool
		killed     bool
	}{
		{"shield absorbs plain", 100, 100, component.MinionPlain, 67, 100, false, false},
		{"rifle breaks shield", 100, 100, component.MinionRifleMan, 0, 100, true, false},
		{"shield clamps", 30, 100, component.MinionGunMan, 0, 100, true, false},
		{"health without shield", 0, 100, component.MinionGunMan, 0, 85, false, false},
		{"lethal", 0, 10, component.MinionRifleMan, 0, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := engine.NewTestGameContext(nil)
			h := ctx.Hero
			h.SetShield(tt.shield)
			h.Health = tt.health

			res := ApplyHeroDamage(ctx, tt.mt)
			if !res.Applied || h.ShieldHealth != tt.wantShield || h.Health != tt.wantHealth {
				t.Errorf("shield=%d health=%d, want %d %d", h.ShieldHealth, h.Health, tt.wantShield, tt.wantHealth)
			}
			if res.Depleted != tt.depleted || res.Killed != tt.killed || h.Dead != tt.killed {
				t.Errorf("depleted=%v killed=%v dead=%v", res.Depleted, res.Killed, h.Dead)
			}
			if h.HasShield != (h.ShieldHealth > 0) {
				t.Error("HasShield out of sync")
			}
			if !h.IsInvulnerable || h.InvulnerableKind != component.InvulnerableDamage {
				t.Error("no damage invulnerability after hit")
			}

			counts := drain(ctx)
			if (counts[event.EventShieldDepleted] == 1) != tt.depleted || (counts[event.EventHeroDied] == 1) != tt.killed {
				t.Errorf("events = %v", counts)
			}

			if ApplyHeroDamage(ctx, tt.mt).Applied {
				t.Error("damage applied during invulnerability")
			}
		})
	}
}

func TestHeroDamageBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := engine.NewTestGameContext(nil)
		h := ctx.Hero
		h.SetShield(rapid.IntRange(0, parameter.HeroMaxShield).Draw(t, "shield"))
		h.Health = rapid.IntRange(1, parameter.HeroMaxHealth).Draw(t, "health")

		hits := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 30).Draw(t, "hits")
		for _, hit := range hits {
			before := h.Health + h.ShieldHealth
			invulnerable := h.IsInvulnerable
			res := ApplyHeroDamage(ctx, component.MinionType(hit))
			if invulnerable && res.Applied {
				t.Fatal("damage through invulnerability")
			}
			if h.Health < 0 || h.Health > parameter.HeroMaxHealth || h.ShieldHealth < 0 || h.ShieldHealth > parameter.HeroMaxShield {
				t.Fatalf("out of bounds: health=%d shield=%d", h.Health, h.ShieldHealth)
			}
			if h.Health+h.ShieldHealth > before {
				t.Fatal("damage healed the hero")
			}
			if rapid.Bool().Draw(t, "expire") {
				h.TickInvulnerability(parameter.HitInvulnerability)
			}
		}
	})
}
