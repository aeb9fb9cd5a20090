package frogger

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

const surfaceWidth = 880

func TestRowAdvanceWrap(t *testing.T) {
	tests := []struct {
		name  string
		dir   core.Direction
		speed int
		left  int
		want  int
	}{
		{"moves left", core.DirLeft, 5, 100, 95},
		{"moves right", core.DirRight, 5, 100, 105},
		{"left of surface wraps right", core.DirLeft, 5, -81, surfaceWidth},
		{"exactly -width still moves", core.DirLeft, 5, -80, -85},
		{"at right edge wraps left", core.DirRight, 12, surfaceWidth, -80},
		{"just inside right edge moves", core.DirRight, 12, surfaceWidth - 1, surfaceWidth + 11},
		{"wrap ignores direction", core.DirRight, 3, -200, surfaceWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObstacle(plainKind("car", 80), tt.left, 0)
			r := NewRow(RowRoad, 9, 720, tt.dir, tt.speed, []*Obstacle{o})
			delta := r.Advance(surfaceWidth)
			if o.Left() != tt.want {
				t.Errorf("left = %d, want %d", o.Left(), tt.want)
			}
			if delta != tt.dir.Sign()*tt.speed {
				t.Errorf("delta = %d", delta)
			}
		})
	}
}

func TestGoalRowNeverMoves(t *testing.T) {
	o := NewObstacle(goalKind(), 33, 160)
	r := NewRow(RowGoal, 2, 160, core.DirRight, 9, []*Obstacle{o})
	if r.Speed() != 0 {
		t.Errorf("goal row speed = %d", r.Speed())
	}
	if d := r.Advance(surfaceWidth); d != 0 || o.Left() != 33 {
		t.Errorf("goal row moved: delta %d left %d", d, o.Left())
	}
}

func TestRoadCollisionIsStrict(t *testing.T) {
	character := core.Interval{Left: 100, Right: 180}
	tests := []struct {
		name string
		left int
		want bool
	}{
		{"overlap", 150, true},
		{"touching right edge", 180, false},
		{"touching left edge", 20, false},
		{"one pixel in", 179, true},
		{"covering", 60, true},
		{"far away", 500, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRow(RowRoad, 9, 720, core.DirLeft, 3, []*Obstacle{NewObstacle(plainKind("car", 80), tt.left, 720)})
			if got := r.CollidesWith(character, nil); got != tt.want {
				t.Errorf("CollidesWith = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogCollisionInverted(t *testing.T) {
	log := NewObstacle(plainKind("short_log", 190), 100, 240)
	r := NewRow(RowLog, 3, 240, core.DirRight, 5, []*Obstacle{log})

	if r.CollidesWith(core.Interval{Left: 150, Right: 230}, nil) {
		t.Error("standing on the log should be safe")
	}
	if !r.CollidesWith(core.Interval{Left: 400, Right: 480}, nil) {
		t.Error("water should be fatal")
	}
	if !r.CollidesWith(core.Interval{Left: 290, Right: 370}, nil) {
		t.Error("touching the log end is not standing on it")
	}
}

func TestTurtleRowSubmergedIsFatal(t *testing.T) {
	turtle := NewObstacle(turtleKind(), 100, 320)
	r := NewRow(RowTurtle, 4, 320, core.DirLeft, 6, []*Obstacle{turtle})
	on := core.Interval{Left: 120, Right: 200}

	if r.CollidesWith(on, nil) {
		t.Fatal("surfaced turtle should carry")
	}
	r.Animate(600 * time.Millisecond)
	if !turtle.Submerged() {
		t.Fatal("turtle should be submerged")
	}
	if !r.CollidesWith(on, nil) {
		t.Error("riding a submerged turtle should be fatal")
	}
	if !r.CollidesWith(core.Interval{Left: 500, Right: 580}, nil) {
		t.Error("water should be fatal")
	}
}

func TestTurtleRowOnlyOverlappingTurtlesMatter(t *testing.T) {
	diving := NewObstacle(turtleKind(), 600, 320)
	diving.animate(600 * time.Millisecond)
	surfaced := NewObstacle(turtleKind(), 100, 320)
	r := NewRow(RowTurtle, 4, 320, core.DirLeft, 6, []*Obstacle{diving, surfaced})
	if r.CollidesWith(core.Interval{Left: 120, Right: 200}, nil) {
		t.Error("a diving turtle elsewhere in the row should not matter")
	}
}

func TestGoalRowClaimsSlotOnce(t *testing.T) {
	bus := event.NewBus()
	rec := record(bus)
	slots := []*Obstacle{NewObstacle(goalKind(), 33, 160), NewObstacle(goalKind(), 237, 160)}
	r := NewRow(RowGoal, 2, 160, core.DirLeft, 0, slots)
	r.marker = markerKind()
	character := core.Interval{Left: 50, Right: 130}

	if r.CollidesWith(character, bus) {
		t.Fatal("landing in a free slot should be safe")
	}
	if !slots[0].Met() || slots[1].Met() {
		t.Errorf("met = %v %v, want true false", slots[0].Met(), slots[1].Met())
	}
	if rec.count(event.TopicPlayerAtGoal) != 1 {
		t.Fatalf("player-at-goal fired %d times", rec.count(event.TopicPlayerAtGoal))
	}
	ev := rec.events[0].(event.PlayerAtGoal)
	if ev.Slot != (core.Interval{Left: 33, Right: 111}) || ev.Lane != 2 {
		t.Errorf("event = %+v", ev)
	}
	if len(r.Obstacles()) != 3 || r.Obstacles()[2].Kind().Name != markerKind().Name || r.Obstacles()[2].Left() != 33 {
		t.Error("goal marker not appended at the slot")
	}

	if !r.CollidesWith(character, bus) {
		t.Error("a claimed slot should not be landed in again")
	}
	if rec.count(event.TopicPlayerAtGoal) != 1 {
		t.Error("player-at-goal fired again for the same slot")
	}
	if got := r.GoalsMet(); len(got) != 2 || !got[0] || got[1] {
		t.Errorf("GoalsMet = %v", got)
	}
}

func TestGoalRowGapIsFatal(t *testing.T) {
	bus := event.NewBus()
	rec := record(bus)
	r := NewRow(RowGoal, 2, 160, core.DirLeft, 0, []*Obstacle{NewObstacle(goalKind(), 33, 160), NewObstacle(goalKind(), 237, 160)})
	if !r.CollidesWith(core.Interval{Left: 140, Right: 220}, bus) {
		t.Error("landing between slots should be fatal")
	}
	if len(rec.events) != 0 {
		t.Errorf("unexpected events %v", rec.topics())
	}
}

func TestRowResetKeepsClaimedSlots(t *testing.T) {
	slot := NewObstacle(goalKind(), 33, 160)
	r := NewRow(RowGoal, 2, 160, core.DirLeft, 0, []*Obstacle{slot})
	r.marker = markerKind()
	r.CollidesWith(core.Interval{Left: 40, Right: 120}, nil)
	r.Reset()
	if !slot.Met() || len(r.Obstacles()) != 2 {
		t.Error("Reset cleared a claimed slot")
	}
}

func TestRowKindHelpers(t *testing.T) {
	tests := []struct {
		name    string
		kind    RowKind
		carries bool
		cause   event.Cause
	}{
		{"road", RowRoad, false, event.CauseHit},
		{"log", RowLog, true, event.CauseDrowned},
		{"turtle", RowTurtle, true, event.CauseDrowned},
		{"goal", RowGoal, false, event.CauseGoalMiss},
	}
	for _, tt := range tests {
		k, err := ParseRowKind(tt.name)
		if err != nil || k != tt.kind || k.String() != tt.name {
			t.Errorf("ParseRowKind(%q) = %v, %v", tt.name, k, err)
		}
		if k.Carries() != tt.carries || k.Cause() != tt.cause {
			t.Errorf("%s: carries %v cause %v", tt.name, k.Carries(), k.Cause())
		}
	}
	if _, err := ParseRowKind("lava"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
