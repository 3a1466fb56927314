package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixbreak/internal/config"
	"github.com/diegok/pixbreak/internal/game"
	"github.com/diegok/pixbreak/internal/protocol"
	"github.com/diegok/pixbreak/internal/ui"
)

// How long a direction key counts as held after its last press or repeat
const keyHold = 150 * time.Millisecond

// App is the main application controller that manages the round lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	round    *game.Round
	held     *ui.HeldKey

	// Set by a quit key, handed to the round on the next tick
	quitPressed bool

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

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and plays one round.
func (a *App) Run() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	if err := a.attach(screen); err != nil {
		a.reportError(screen, err)
		screen.Fini()
		return err
	}

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

// attach binds the app to a screen and starts a fresh round on it
func (a *App) attach(screen *ui.Screen) error {
	round, err := game.NewRound(a.cfg.Settings())
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.round = round
	a.held = ui.NewHeldKey(holdTicks(a.cfg.FPS))
	a.quitPressed = false

	s := round.Settings()
	log.Printf("round started: %vx%v field, %d lives, bricks=%v angled=%v gravity=%v",
		s.Width, s.Height, s.Lives, s.Bricks, s.AngledPaddle, s.Gravity)
	return nil
}

// reportError shows err on screen and waits for a key press
func (a *App) reportError(screen *ui.Screen, err error) {
	ui.NewRenderer(screen).RenderError(err.Error())
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

// mainLoop ticks the round at a fixed rate until it signals stop.
func (a *App) mainLoop() error {
	// Create event channel for screen events
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

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			log.Printf("interrupted at tick %d", a.round.Ticks())
			return nil

		case ev := <-events:
			a.handleEvent(ev)

		case <-ticker.C:
			if !a.tick() {
				a.waitForKey(events)
				return nil
			}
		}
	}
}

// handleEvent processes keyboard and other events.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		// Handle resize by redrawing the current frame
		a.screen.Clear()
		a.renderer.RenderRound(a.round.Snapshot())
	}
}

// handleKey records quit requests and paddle direction presses.
func (a *App) handleKey(key tcell.Key, r rune) {
	if ui.IsQuitKey(key, r) {
		a.quitPressed = true
		return
	}
	if dir := ui.KeyToDirection(key, r); dir != protocol.DirNone {
		a.held.Press(dir)
	}
}

// tick advances the round once and draws the result.
// Returns false once the round has stopped.
func (a *App) tick() bool {
	input := game.Input{
		Direction: a.held.Next(),
		Quit:      a.quitPressed,
	}

	cont, ev := a.round.Tick(input)
	a.logEvents(ev)
	a.renderer.RenderRound(a.round.Snapshot())

	if !cont {
		log.Printf("round %s after %d ticks: score=%d lives=%d",
			a.round.State(), a.round.Ticks(), a.round.Score(), a.round.Lives())
	}
	return cont
}

func (a *App) logEvents(ev game.Events) {
	if ev.BricksHit > 0 {
		log.Printf("tick %d: %d brick(s) hit for %d points, score=%d",
			a.round.Ticks(), ev.BricksHit, ev.PointsScored, a.round.Score())
	}
	if ev.LifeLost {
		log.Printf("tick %d: ball lost, %d lives left", a.round.Ticks(), a.round.Lives())
	}
	if ev.RoundWon {
		log.Printf("tick %d: wall cleared", a.round.Ticks())
	}
}

// waitForKey keeps the final frame up until a key press, unless the player quit.
func (a *App) waitForKey(events <-chan tcell.Event) {
	if a.round.State() == game.StateQuit {
		return
	}
	for {
		select {
		case <-a.quit:
			return
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return
			case *tcell.EventResize:
				a.screen.Clear()
				a.renderer.RenderRound(a.round.Snapshot())
			}
		}
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}

// holdTicks converts keyHold into ticks at the given rate, at least one.
func holdTicks(fps int) int {
	ticks := int(keyHold * time.Duration(fps) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
