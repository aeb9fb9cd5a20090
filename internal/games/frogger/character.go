package frogger

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

// Animation names understood by the character.
const (
	AnimLoseLife  = "lose-life"
	AnimMoveUp    = "move-up"
	AnimMoveDown  = "move-down"
	AnimMoveLeft  = "move-left"
	AnimMoveRight = "move-right"
)

// Character is the player-controlled frog.
type Character struct {
	bus   *event.Bus
	geom  core.Geometry
	width int
	glyph rune
	color core.Color

	row    int
	left   int
	top    int
	frozen bool
	hidden bool

	anims   map[string]*Animation
	current string
}

// NewCharacter creates the character and subscribes it to the bus. It is
// placed once the board geometry is published.
func NewCharacter(bus *event.Bus, cfg config.CharacterConfig) *Character {
	glyph, _ := utf8.DecodeRuneInString(cfg.Glyph)
	if glyph == utf8.RuneError {
		glyph = '@'
	}
	color, _ := core.ParseColor(cfg.Color)
	c := &Character{
		bus:   bus,
		width: cfg.Width,
		glyph: glyph,
		color: color,
		anims: make(map[string]*Animation, len(cfg.Animations)),
	}
	for name, a := range cfg.Animations {
		c.anims[name] = NewAnimation(a)
	}

	event.On(bus, func(ev event.BoardInitialized) {
		c.geom = ev.Geometry
		c.Reset()
	})
	event.On(bus, func(event.Reset) { c.Reset() })
	event.On(bus, func(event.Restart) { c.Reset() })
	event.On(bus, func(event.PlayerFrozen) { c.frozen = true })
	event.On(bus, func(event.PlayerUnfrozen) { c.frozen = false })
	event.On(bus, func(event.PlayerAtGoal) { c.hidden = true })
	event.On(bus, func(event.PlayerLostLife) { c.playAnimation(AnimLoseLife) })
	return c
}

// Reset puts the character back on the start cell, visible, with no animation.
func (c *Character) Reset() {
	c.row = c.geom.StartRow
	c.top = c.geom.RowTop(c.row)
	c.left = core.Clamp(c.geom.ColumnLeft(c.geom.StartCol), c.geom.Bounds.Left, c.geom.Bounds.Right)
	c.hidden = false
	c.stopAnimation()
}

// Move steps one grid cell in dir, clamped to the bounds. It does nothing
// while frozen. Every unfrozen move publishes PlayerMoved, even against a wall.
func (c *Character) Move(dir core.Direction) bool {
	if c.frozen {
		return false
	}
	b := c.geom.Bounds
	switch dir {
	case core.DirUp:
		c.top = core.Clamp(c.top-c.geom.Grid.Height, b.Top, b.Bottom)
		c.row = c.geom.RowOf(c.top)
		c.playAnimation(AnimMoveUp)
	case core.DirDown:
		c.top = core.Clamp(c.top+c.geom.Grid.Height, b.Top, b.Bottom)
		c.row = c.geom.RowOf(c.top)
		c.playAnimation(AnimMoveDown)
	case core.DirLeft:
		c.left = core.Clamp(c.left-c.geom.Grid.Width, b.Left, b.Right)
		c.playAnimation(AnimMoveLeft)
	case core.DirRight:
		c.left = core.Clamp(c.left+c.geom.Grid.Width, b.Left, b.Right)
		c.playAnimation(AnimMoveRight)
	default:
		return false
	}
	if c.row < 0 || c.row >= c.geom.NumRows {
		panic(fmt.Sprintf("frogger: character row %d outside board", c.row))
	}
	c.bus.Publish(event.PlayerMoved{Direction: dir})
	return true
}

// SetPosition moves the character horizontally without counting as a move.
func (c *Character) SetPosition(left int) {
	c.left = core.Clamp(left, c.geom.Bounds.Left, c.geom.Bounds.Right)
}

// Row returns the logical row index.
func (c *Character) Row() int { return c.row }

// Interval returns the horizontal extent.
func (c *Character) Interval() core.Interval {
	return core.NewInterval(c.left, c.width)
}

func (c *Character) Left() int    { return c.left }
func (c *Character) Top() int     { return c.top }
func (c *Character) Width() int   { return c.width }
func (c *Character) Frozen() bool { return c.frozen }
func (c *Character) Hidden() bool { return c.hidden }

// Glyph returns the rune and color the character is drawn with.
func (c *Character) Glyph() (rune, core.Color) { return c.glyph, c.color }

// Animation returns the name and sprite value of the current animation.
func (c *Character) Animation() (string, int) {
	a, ok := c.anims[c.current]
	if !ok {
		return "", 0
	}
	return c.current, a.Value()
}

// Animate advances the current animation by dt.
func (c *Character) Animate(dt time.Duration) {
	if a, ok := c.anims[c.current]; ok {
		a.Advance(dt)
	}
}

func (c *Character) playAnimation(name string) {
	if c.current != "" && c.current != name {
		if a, ok := c.anims[c.current]; ok {
			a.Reset()
		}
	}
	c.current = name
	if a, ok := c.anims[name]; ok {
		a.Play()
	}
}

func (c *Character) stopAnimation() {
	if a, ok := c.anims[c.current]; ok {
		a.Reset()
	}
	c.current = ""
}
