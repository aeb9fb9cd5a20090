// Package frogger implements the frog-crossing arcade game: a board of moving
// rows, a grid-stepping character and a score/lives/time state machine, all
// wired through a synchronous event bus and driven by a fixed-rate tick.
package frogger

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

// Engine wires the components together and runs frames.
type Engine struct {
	cfg    config.FroggerConfig
	plan   *Plan
	bus    *event.Bus
	geom   core.Geometry
	logger *log.Logger
	clock  func() time.Time

	state     *State
	character *Character
	board     *Board

	refresh time.Duration
	frame   uint64
	lastRun time.Time
	ran     bool
	loaded  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for state transitions. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock sets the time source used by Now.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithBus uses an existing bus, so callers can subscribe before construction.
func WithBus(b *event.Bus) Option {
	return func(e *Engine) { e.bus = b }
}

// New builds an engine for the named layout. Components subscribe in a fixed
// order: state, geometry, character, board.
func New(cfg config.FroggerConfig, layout string, opts ...Option) (*Engine, error) {
	if layout == "" {
		layout = config.DefaultLayout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	e := &Engine{
		cfg:     cfg,
		logger:  log.New(io.Discard),
		clock:   time.Now,
		refresh: cfg.Rules.RefreshRate,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bus == nil {
		e.bus = event.NewBus()
	}

	e.geom = GeometryFromConfig(cfg.Board)
	plan, err := NewPlan(cfg, layout, e.geom)
	if err != nil {
		return nil, err
	}
	e.plan = plan

	e.state = NewState(e.bus, cfg.Rules, e.logger)
	event.On(e.bus, func(event.GameLoad) {
		e.bus.Publish(event.BoardInitialized{Geometry: e.geom})
	})
	e.character = NewCharacter(e.bus, cfg.Character)
	e.board = NewBoard(e.bus, plan, e.character)
	return e, nil
}

// Load publishes GameLoad, which places the character and builds the rows.
// Later calls do nothing.
func (e *Engine) Load() {
	if e.loaded {
		return
	}
	e.loaded = true
	e.logger.Info("game loaded", "layout", e.plan.Name, "lives", e.cfg.Rules.Lives, "time", e.cfg.Rules.TimeTotal)
	e.bus.Publish(event.GameLoad{})
}

// Tick runs a frame if at least one refresh interval has passed since the
// last one. Early ticks are dropped and missed frames are not caught up.
func (e *Engine) Tick(now time.Time) bool {
	if e.ran && now.Sub(e.lastRun) < e.refresh {
		return false
	}
	e.ran = true
	e.lastRun = now
	e.Frame()
	return true
}

// Frame runs exactly one frame: pending reset and animations, then countdown
// and collisions unless frozen, then the render notifications.
func (e *Engine) Frame() {
	if !e.loaded {
		e.Load()
	}
	e.frame++
	dt := e.refresh

	e.state.Advance(dt)
	e.board.Animate(dt)
	e.character.Animate(dt)

	if !e.state.Frozen() {
		e.state.CountDown()
		if !e.state.Frozen() {
			e.bus.Publish(event.CheckCollisions{})
		}
	}

	e.bus.Publish(event.RenderObstacles{Frame: e.frame})
	e.bus.Publish(event.RenderCharacter{Frame: e.frame})
}

// Move forwards a direction to the character.
func (e *Engine) Move(dir core.Direction) bool {
	if !e.loaded {
		return false
	}
	return e.character.Move(dir)
}

// Restart starts a new game with a fresh board.
func (e *Engine) Restart() {
	if !e.loaded {
		e.Load()
	}
	e.state.Restart()
}

// Now returns the engine's clock reading.
func (e *Engine) Now() time.Time { return e.clock() }

func (e *Engine) Bus() *event.Bus              { return e.bus }
func (e *Engine) Phase() Phase                 { return e.state.Phase() }
func (e *Engine) Geometry() core.Geometry      { return e.geom }
func (e *Engine) State() *State                { return e.state }
func (e *Engine) Board() *Board                { return e.board }
func (e *Engine) Character() *Character        { return e.character }
func (e *Engine) Config() config.FroggerConfig { return e.cfg }
func (e *Engine) Layout() string               { return e.plan.Name }
func (e *Engine) Frames() uint64               { return e.frame }
func (e *Engine) Refresh() time.Duration       { return e.refresh }
