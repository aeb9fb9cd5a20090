package frogger

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

// RowKind selects a row's collision policy.
type RowKind int

const (
	RowRoad   RowKind = iota // vehicles kill on contact
	RowLog                   // water kills, logs carry
	RowTurtle                // like logs, but diving turtles kill
	RowGoal                  // fixed slots to land in
)

func (k RowKind) String() string {
	switch k {
	case RowRoad:
		return config.KindRoad
	case RowLog:
		return config.KindLog
	case RowTurtle:
		return config.KindTurtle
	case RowGoal:
		return config.KindGoal
	default:
		return "unknown"
	}
}

// ParseRowKind maps a layout kind name to a RowKind.
func ParseRowKind(s string) (RowKind, error) {
	switch s {
	case config.KindRoad:
		return RowRoad, nil
	case config.KindLog:
		return RowLog, nil
	case config.KindTurtle:
		return RowTurtle, nil
	case config.KindGoal:
		return RowGoal, nil
	}
	return 0, fmt.Errorf("unknown row kind %q", s)
}

// Carries reports whether the row moves a character standing on it.
func (k RowKind) Carries() bool {
	return k == RowLog || k == RowTurtle
}

// Cause is the reason reported when this kind of row kills the character.
func (k RowKind) Cause() event.Cause {
	switch k {
	case RowLog, RowTurtle:
		return event.CauseDrowned
	case RowGoal:
		return event.CauseGoalMiss
	default:
		return event.CauseHit
	}
}

// Row is one lane of obstacles sharing direction and speed.
type Row struct {
	kind      RowKind
	lane      int
	top       int
	direction core.Direction
	speed     int
	obstacles []*Obstacle
	marker    *ObstacleKind // appended on a claimed goal slot
}

// NewRow creates a row. Goal rows never move, whatever speed is given.
func NewRow(kind RowKind, lane, top int, direction core.Direction, speed int, obstacles []*Obstacle) *Row {
	if kind == RowGoal {
		speed = 0
	}
	return &Row{
		kind:      kind,
		lane:      lane,
		top:       top,
		direction: direction,
		speed:     speed,
		obstacles: obstacles,
	}
}

func (r *Row) Kind() RowKind             { return r.kind }
func (r *Row) Lane() int                 { return r.lane }
func (r *Row) Top() int                  { return r.top }
func (r *Row) Direction() core.Direction { return r.direction }
func (r *Row) Speed() int                { return r.speed }

// Obstacles returns the row's obstacles, goal markers included.
func (r *Row) Obstacles() []*Obstacle { return r.obstacles }

// Delta is the horizontal distance the row travels per frame.
func (r *Row) Delta() int {
	return r.direction.Sign() * r.speed
}

// Advance moves every obstacle one frame. An obstacle that has fully left the
// surface re-enters from the opposite edge. Returns the row delta.
func (r *Row) Advance(surfaceWidth int) int {
	delta := r.Delta()
	for _, o := range r.obstacles {
		left := o.Left()
		switch {
		case left < -o.Width():
			o.MoveTo(surfaceWidth)
		case left >= surfaceWidth:
			o.MoveTo(-o.Width())
		default:
			o.MoveTo(left + delta)
		}
	}
	return delta
}

// Animate advances obstacle animations by dt.
func (r *Row) Animate(dt time.Duration) {
	for _, o := range r.obstacles {
		o.animate(dt)
	}
}

// CollidesWith applies the row's policy to the character's extent. On a goal
// row a successful landing claims the slot and publishes PlayerAtGoal.
func (r *Row) CollidesWith(character core.Interval, bus *event.Bus) bool {
	switch r.kind {
	case RowRoad:
		for _, o := range r.obstacles {
			if core.HorizontallyIntersects(character, o.Position()) {
				return true
			}
		}
		return false
	case RowLog, RowTurtle:
		standing := false
		for _, o := range r.obstacles {
			if !core.HorizontallyIntersects(character, o.Position()) {
				continue
			}
			if o.Submerged() {
				return true
			}
			standing = true
		}
		return !standing
	case RowGoal:
		return !r.claimGoal(character, bus)
	}
	return false
}

// claimGoal marks the first free slot under the character. Gaps between slots
// and claimed slots are not landings.
func (r *Row) claimGoal(character core.Interval, bus *event.Bus) bool {
	for _, o := range r.obstacles {
		if o.kind.Name == config.GoalMarkerType || o.met {
			continue
		}
		if !core.HorizontallyIntersects(character, o.Position()) {
			continue
		}
		o.met = true
		if r.marker != nil {
			r.obstacles = append(r.obstacles, NewObstacle(r.marker, o.Left(), r.top))
		}
		if bus != nil {
			bus.Publish(event.PlayerAtGoal{Lane: r.lane, Slot: o.Position()})
		}
		return true
	}
	return false
}

// GoalsMet returns the claimed state of each goal slot in order.
func (r *Row) GoalsMet() []bool {
	var met []bool
	for _, o := range r.obstacles {
		if o.kind.Name == config.GoalMarkerType {
			continue
		}
		met = append(met, o.met)
	}
	return met
}

// Reset returns every obstacle to its start. Claimed slots and their markers
// remain until the board is rebuilt.
func (r *Row) Reset() {
	for _, o := range r.obstacles {
		o.Reset()
	}
}
