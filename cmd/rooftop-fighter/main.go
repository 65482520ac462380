package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/rooftop-fighter/audio"
	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/core"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/game"
	"github.com/lixenwraith/rooftop-fighter/input"
	"github.com/lixenwraith/rooftop-fighter/level"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/render"
	"github.com/lixenwraith/rooftop-fighter/status"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/ and show the status line")
	levelFlag  = flag.String("level", "", "Level script YAML (default: built-in skyline)")
	keymapFlag = flag.String("keymap", "", "Keymap YAML overriding the default bindings")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

// errQuit ends the frame loop on a quit key
var errQuit = errors.New("quit")

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rooftop-fighter: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// app bundles the long-lived collaborators shared by every session
type app struct {
	script *level.Script
	seed   uint64

	screen  tcell.Screen
	clock   *engine.PausableClock
	machine *input.Machine
	sound   *audio.Muter

	scene        *render.Scene
	hud          *render.HUD
	modal        *render.QuizModal
	debug        *render.DebugRenderer
	orchestrator *render.Orchestrator
	registry     *status.Registry

	session  *game.Session
	restarts uint64
}

func run() error {
	script, err := loadScript(*levelFlag)
	if err != nil {
		return err
	}
	keys, err := loadKeymap(*keymapFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	registry := status.NewRegistry()

	// Initialize audio engine, continuing silent on failure
	var sink engine.AudioSink
	if player, err := audio.NewPlayer(); err == nil {
		defer player.Close()
		sink = player
		registry.Bools.Get(status.KeyAudioAvailable).Store(true)
	} else {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
		sink = engine.NewSilentAudio()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	modal := render.NewQuizModal(nil)
	a := &app{
		script:       script,
		seed:         seed,
		screen:       screen,
		clock:        clock,
		machine:      input.NewMachine(keys),
		sound:        audio.NewMuter(sink, *muteFlag),
		scene:        render.NewScene(),
		hud:          render.NewHUD(clock, modal),
		modal:        modal,
		debug:        render.NewDebugRenderer(registry, *debugFlag),
		orchestrator: render.NewOrchestrator(screen),
		registry:     registry,
	}
	a.registerRenderers()

	if err := a.newSession(); err != nil {
		screen.Fini()
		core.SetCrashScreen(nil)
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(sigCtx)

	events := make(chan tcell.Event, 256)
	g.Go(core.Guard(func() error {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}))

	loopErr := a.loop(ctx, events)

	a.session.Close()
	screen.Fini()
	core.SetCrashScreen(nil)
	stop()

	if err := g.Wait(); err != nil {
		return err
	}
	if errors.Is(loopErr, errQuit) {
		return nil
	}
	return loopErr
}

func loadScript(path string) (*level.Script, error) {
	if path == "" {
		return level.Default()
	}
	return level.Load(path)
}

func loadKeymap(path string) (*input.KeyTable, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	return input.LoadKeyConfig(data)
}

func (a *app) registerRenderers() {
	o := a.orchestrator
	o.Register(render.NewBackgroundRenderer(a.hud), render.PriorityBackground)
	o.Register(render.NewSceneRenderer(a.scene, a.hud, component.NodePlatform, component.NodeStairs), render.PriorityPlatforms)
	o.Register(render.NewSceneRenderer(a.scene, a.hud,
		component.NodePickup, component.NodeMinion, component.NodeProjectile, component.NodeHero), render.PriorityEntities)
	o.Register(render.NewSceneRenderer(a.scene, a.hud, component.NodeBoltShot, component.NodeBurst), render.PriorityEffects)
	o.Register(a.hud, render.PriorityUI)
	o.Register(a.modal, render.PriorityOverlay)
	o.Register(a.debug, render.PriorityDebug)
}

// newSession replaces the running session with a fresh one
func (a *app) newSession() error {
	if a.session != nil {
		a.session.Close()
	}
	a.scene.Clear()
	a.hud.Reset()
	a.machine.Reset()

	s, err := game.NewSession(game.Config{
		Script: a.script,
		Scene:  a.scene,
		UI:     a.hud,
		Audio:  a.sound,
		Status: a.registry,
		Seed:   a.seed + a.restarts,
		Start:  a.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	a.restarts++
	a.session = s
	a.modal.SetAnswerFunc(func(choice int) { s.Answer(choice) })
	s.Context().Logf("session started (seed %d)", a.seed+a.restarts-1)
	return nil
}

// loop owns all gameplay state until quit, signal or error
func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := a.clock.Now()
	paused := a.registry.Bools.Get(status.KeyPaused)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if err := a.handleEvent(ev); err != nil {
				return err
			}

		case <-ticker.C:
			now := a.clock.Now()
			dt := now.Sub(last)
			last = now
			paused.Store(a.clock.IsPaused())

			if !a.clock.IsPaused() {
				a.session.Frame(a.machine.Sample(now), now, dt)
				if a.session.RestartRequested() {
					if err := a.newSession(); err != nil {
						return err
					}
				}
			}
			a.orchestrator.RenderFrame(a.session.Context(), now)
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) error {
	intent := a.machine.Process(ev, a.clock.Now())
	if intent != nil {
		switch intent.Action {
		case input.ActionQuit:
			return errQuit
		case input.ActionResize:
			a.orchestrator.Resize()
			return nil
		case input.ActionPause:
			if a.clock.Toggle() {
				a.machine.Reset()
				a.hud.Notify("Paused", parameter.ColorInfo, parameter.NotifyShort)
			}
			return nil
		case input.ActionToggleMute:
			if a.sound.Toggle() {
				a.hud.Notify("Sound off", parameter.ColorInfo, parameter.NotifyShort)
			} else {
				a.hud.Notify("Sound on", parameter.ColorInfo, parameter.NotifyShort)
			}
			return nil
		case input.ActionToggleDebug:
			a.debug.Toggle()
			return nil
		}
		if choice, ok := intent.Action.Answer(); ok && a.modal.IsVisible() {
			if !a.clock.IsPaused() {
				a.modal.Choose(choice)
			}
			return nil
		}
	}

	// Remaining keys navigate the quiz buttons while a question is up
	if key, ok := ev.(*tcell.EventKey); ok && a.modal.IsVisible() && !a.clock.IsPaused() {
		a.modal.HandleKey(key)
	}
	return nil
}
