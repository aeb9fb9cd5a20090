package frogger

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ObstacleKind describes a family of obstacles as data.
type ObstacleKind struct {
	Name      string
	Width     int
	Glyph     rune
	Color     core.Color
	Fixed     bool // goal slots and markers never move
	Submerges bool
	Animation *config.AnimationConfig
}

// KindsFromConfig converts the configured obstacle table.
func KindsFromConfig(obstacles map[string]config.ObstacleConfig) map[string]*ObstacleKind {
	kinds := make(map[string]*ObstacleKind, len(obstacles))
	for name, o := range obstacles {
		glyph, _ := utf8.DecodeRuneInString(o.Glyph)
		if glyph == utf8.RuneError {
			glyph = '#'
		}
		color, _ := core.ParseColor(o.Color)
		kinds[name] = &ObstacleKind{
			Name:      name,
			Width:     o.Width,
			Glyph:     glyph,
			Color:     color,
			Fixed:     o.Fixed,
			Submerges: o.Submerges,
			Animation: o.Animation,
		}
	}
	return kinds
}

// Obstacle is a vehicle, log, turtle group, goal slot or goal marker.
type Obstacle struct {
	kind      *ObstacleKind
	left      int
	top       int
	startLeft int
	anim      *Animation
	met       bool
}

// NewObstacle places an obstacle at its start position. Animated kinds start
// playing immediately.
func NewObstacle(kind *ObstacleKind, left, top int) *Obstacle {
	o := &Obstacle{
		kind:      kind,
		left:      left,
		top:       top,
		startLeft: left,
	}
	if kind.Animation != nil {
		o.anim = NewAnimation(*kind.Animation)
		o.anim.Play()
	}
	return o
}

// Kind returns the obstacle's kind.
func (o *Obstacle) Kind() *ObstacleKind { return o.kind }

// Position returns the horizontal extent.
func (o *Obstacle) Position() core.Interval {
	return core.NewInterval(o.left, o.kind.Width)
}

func (o *Obstacle) Left() int  { return o.left }
func (o *Obstacle) Top() int   { return o.top }
func (o *Obstacle) Width() int { return o.kind.Width }

// MoveTo sets the left edge. Fixed kinds ignore it.
func (o *Obstacle) MoveTo(left int) {
	if o.kind.Fixed {
		return
	}
	o.left = left
}

// Reset returns the obstacle to its start position and restarts its animation.
// A claimed goal slot stays claimed.
func (o *Obstacle) Reset() {
	o.left = o.startLeft
	if o.anim != nil {
		o.anim.Reset()
		o.anim.Play()
	}
}

// Submerged reports whether a diving kind currently shows its deepest frame.
func (o *Obstacle) Submerged() bool {
	return o.kind.Submerges && o.anim != nil && o.anim.AtMax()
}

// Frame returns the sprite value of the running animation, or 0.
func (o *Obstacle) Frame() int {
	if o.anim == nil {
		return 0
	}
	return o.anim.Value()
}

// Met reports whether a goal slot has been claimed.
func (o *Obstacle) Met() bool { return o.met }

func (o *Obstacle) animate(dt time.Duration) {
	if o.anim != nil {
		o.anim.Advance(dt)
	}
}
