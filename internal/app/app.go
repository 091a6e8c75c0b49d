package app

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/crankpong/internal/audio"
	"github.com/diegok/crankpong/internal/config"
	"github.com/diegok/crankpong/internal/game"
	"github.com/diegok/crankpong/internal/ui"
)

// App wires the terminal, keyboard, audio and game together and drives
// the fixed-rate frame loop.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	keyboard *ui.Keyboard
	game     *game.Game

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application. It initializes the
// screen and audio, builds the game, and runs until quit.
func (a *App) Run() error {
	if !a.cfg.Mute {
		// Ignore errors - game works without sound
		_ = audio.Init()
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.keyboard = ui.NewKeyboard()

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	a.game = game.New(a.cfg, rng, a.keyboard, audio.NewSynth())

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// mainLoop runs the frame loop: key events feed the keyboard between
// ticks, each tick advances the game one frame and redraws.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	// The handheld refreshes at 30 frames per second.
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.game.Update()
			a.render()
			a.keyboard.EndFrame()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.keyboard.HandleKey(ev)

	case *tcell.EventResize:
		a.screen.Clear()
		a.render()
	}

	return false
}

// render draws the screen matching the game's state.
func (a *App) render() {
	snap := a.game.Snapshot()
	switch snap.State {
	case game.StateGameOver:
		a.renderer.RenderGameOver(snap)
	default:
		a.renderer.RenderPlaying(snap)
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
