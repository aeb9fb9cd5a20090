package frogger

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

// Rider is whatever a log or turtle row can carry.
type Rider interface {
	Row() int
	Interval() core.Interval
	SetPosition(left int)
}

// Board owns the rows of the hazard field.
type Board struct {
	bus   *event.Bus
	plan  *Plan
	rider Rider
	geom  core.Geometry
	rows  []*Row
}

// NewBoard creates a board and subscribes it to the bus. Rows are built when
// the geometry arrives.
func NewBoard(bus *event.Bus, plan *Plan, rider Rider) *Board {
	b := &Board{bus: bus, plan: plan, rider: rider}
	event.On(bus, func(ev event.BoardInitialized) {
		b.geom = ev.Geometry
		b.build()
	})
	event.On(bus, func(event.RenderObstacles) { b.Advance() })
	event.On(bus, func(event.CheckCollisions) { b.CheckCollision() })
	event.On(bus, func(event.Reset) { b.Reset() })
	event.On(bus, func(event.Restart) { b.build() })
	return b
}

// build replaces every row with a fresh copy of the plan. Claimed goal slots
// and their markers are dropped.
func (b *Board) build() {
	rows := b.plan.Build(b.geom)
	lanes := make(map[int]bool, len(rows))
	for _, r := range rows {
		if lanes[r.Lane()] {
			panic(fmt.Sprintf("frogger: two rows on lane %d", r.Lane()))
		}
		lanes[r.Lane()] = true
	}
	b.rows = rows
}

// Rows returns the rows top to bottom in layout order.
func (b *Board) Rows() []*Row { return b.rows }

// RowAt returns the row on a lane, or nil for a safe lane.
func (b *Board) RowAt(lane int) *Row {
	for _, r := range b.rows {
		if r.Lane() == lane {
			return r
		}
	}
	return nil
}

// Advance moves every row one frame and carries the rider along the row it
// stands on.
func (b *Board) Advance() {
	width := b.geom.Width()
	for _, r := range b.rows {
		delta := r.Advance(width)
		if r.Kind().Carries() && b.rider != nil && b.rider.Row() == r.Lane() && delta != 0 {
			b.rider.SetPosition(b.rider.Interval().Left + delta)
		}
	}
}

// Animate advances every obstacle animation.
func (b *Board) Animate(dt time.Duration) {
	for _, r := range b.rows {
		r.Animate(dt)
	}
}

// CheckCollision asks the rider's row whether the rider dies there and
// publishes Collision if so. Lanes without a row are safe.
func (b *Board) CheckCollision() bool {
	if b.rider == nil {
		return false
	}
	r := b.RowAt(b.rider.Row())
	if r == nil {
		return false
	}
	if !r.CollidesWith(b.rider.Interval(), b.bus) {
		return false
	}
	b.bus.Publish(event.Collision{Lane: r.Lane(), Cause: r.Kind().Cause()})
	return true
}

// Reset returns all obstacles to their start positions.
func (b *Board) Reset() {
	for _, r := range b.rows {
		r.Reset()
	}
}

// GoalsMet returns the claimed state of every goal slot on the board.
func (b *Board) GoalsMet() []bool {
	var met []bool
	for _, r := range b.rows {
		if r.Kind() == RowGoal {
			met = append(met, r.GoalsMet()...)
		}
	}
	return met
}
