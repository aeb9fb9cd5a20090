package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Game adapts the engine to the platform's Game contract.
type Game struct {
	cfg    config.FroggerConfig
	layout string
	opts   []Option

	engine   *Engine
	renderer *Renderer
	attempts *AttemptLog
	paused   bool
}

// NewGame creates a game for a layout and loads its engine.
func NewGame(cfg config.FroggerConfig, layout string, opts ...Option) (*Game, error) {
	if layout == "" {
		layout = config.DefaultLayout
	}
	if err := cfg.ValidateLayout(layout); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, layout: layout, opts: opts}
	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) build() error {
	e, err := New(g.cfg, g.layout, g.opts...)
	if err != nil {
		return err
	}
	g.engine = e
	g.renderer = NewRenderer(e.Bus(), e.Board(), e.Character(), g.cfg)
	g.attempts = NewAttemptLog(e.Bus(), e.State())
	e.Load()
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "frogger" }

// Title returns the display name.
func (g *Game) Title() string { return fmt.Sprintf("Frogger (%s)", g.layout) }

// Reset restarts the game. The session high score and attempt log are kept.
func (g *Game) Reset(core.RuntimeConfig) {
	g.engine.Restart()
	g.paused = false
}

// Step applies the tick's input and lets the engine decide whether to run a frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.engine.Phase().Terminal() {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.engine.Restart()
		g.paused = false
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	for _, dir := range in.Moves {
		g.engine.Move(dir)
	}
	ran := g.engine.Tick(g.engine.Now())
	return core.StepResult{State: g.State(), Ran: ran}
}

// Render draws the last frame and the pause banner.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(dst)
	if g.paused {
		_, h := g.renderer.Size()
		dst.DrawTextCentered(h/2, " PAUSED ", core.ColorBrightYellow)
	}
}

// State returns the summary the platform shows and uses for end-of-game handling.
func (g *Game) State() core.GameState {
	s := g.engine.State()
	return core.GameState{
		Score:     s.Score(),
		HighScore: s.HighScore(),
		Lives:     s.Lives(),
		GameOver:  s.Phase() == PhaseGameOver,
		Won:       s.Phase() == PhaseWon,
		Paused:    g.paused,
	}
}

// Engine exposes the running engine.
func (g *Game) Engine() *Engine { return g.engine }

// Attempts returns every attempt of the session.
func (g *Game) Attempts() []Attempt { return g.attempts.Attempts() }

// Layout returns the layout name.
func (g *Game) Layout() string { return g.layout }
