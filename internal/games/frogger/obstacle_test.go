package frogger

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestObstaclePositionAndMove(t *testing.T) {
	o := NewObstacle(plainKind("truck", 122), 100, 720)
	if got := o.Position(); got != (core.Interval{Left: 100, Right: 222}) {
		t.Errorf("Position = %+v", got)
	}
	o.MoveTo(40)
	if o.Left() != 40 || o.Top() != 720 {
		t.Errorf("after MoveTo: left %d top %d", o.Left(), o.Top())
	}
	o.Reset()
	if o.Left() != 100 {
		t.Errorf("Reset left = %d, want 100", o.Left())
	}
}

func TestFixedObstacleIgnoresMoveTo(t *testing.T) {
	for _, k := range []*ObstacleKind{goalKind(), markerKind()} {
		o := NewObstacle(k, 33, 160)
		o.MoveTo(500)
		if o.Left() != 33 {
			t.Errorf("%s moved to %d", k.Name, o.Left())
		}
	}
}

func TestTurtleSubmergesOnDeepestFrame(t *testing.T) {
	o := NewObstacle(turtleKind(), 0, 320)
	if o.Submerged() {
		t.Fatal("submerged at start")
	}
	o.animate(400 * time.Millisecond) // frame 2, value 2
	if o.Submerged() {
		t.Fatalf("submerged at value %d", o.Frame())
	}
	o.animate(200 * time.Millisecond) // frame 3, value 3
	if !o.Submerged() {
		t.Fatalf("not submerged at value %d", o.Frame())
	}
	o.animate(200 * time.Millisecond) // frame 4, value 3
	if !o.Submerged() {
		t.Fatal("surfaced while still at the deepest value")
	}
	o.animate(200 * time.Millisecond) // frame 5, value 2
	if o.Submerged() {
		t.Fatal("still submerged at value 2")
	}

	o.Reset()
	if o.Frame() != 0 || o.Submerged() {
		t.Errorf("Reset left frame value %d", o.Frame())
	}
}

func TestNonDivingKindNeverSubmerged(t *testing.T) {
	k := turtleKind()
	k.Submerges = false
	o := NewObstacle(k, 0, 0)
	o.animate(600 * time.Millisecond)
	if o.Submerged() {
		t.Error("kind without submerges reported submerged")
	}
}

func TestKindsFromConfig(t *testing.T) {
	kinds := KindsFromConfig(config.DefaultConfig().Obstacles)
	truck := kinds["truck"]
	if truck == nil || truck.Width != 122 || truck.Glyph != '=' || truck.Color != core.ColorWhite {
		t.Errorf("truck = %+v", truck)
	}
	if !kinds["three_turtles"].Submerges || kinds["three_turtles"].Animation == nil {
		t.Error("three_turtles should submerge with an animation")
	}
	if !kinds["goal"].Fixed || !kinds[config.GoalMarkerType].Fixed {
		t.Error("goal kinds should be fixed")
	}
}
