package frogger

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

func newTestEngine(t *testing.T, mutate ...func(*config.FroggerConfig)) *Engine {
	t.Helper()
	cfg := config.DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	e, err := New(cfg, config.DefaultLayout)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Load()
	return e
}

func testGeometry() core.Geometry {
	return GeometryFromConfig(config.DefaultConfig().Board)
}

// recorder keeps every event published after it subscribed.
type recorder struct {
	events []event.Event
}

func record(b *event.Bus) *recorder {
	r := &recorder{}
	b.SubscribeAll(func(ev event.Event) { r.events = append(r.events, ev) })
	return r
}

func (r *recorder) topics() []event.Topic {
	out := make([]event.Topic, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Topic())
	}
	return out
}

func (r *recorder) count(t event.Topic) int {
	n := 0
	for _, ev := range r.events {
		if ev.Topic() == t {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.events = nil }

// stubRider stands in for the character in board and row tests.
type stubRider struct {
	row  int
	left int
}

func (s *stubRider) Row() int                { return s.row }
func (s *stubRider) Interval() core.Interval { return core.NewInterval(s.left, 80) }
func (s *stubRider) SetPosition(left int)    { s.left = left }

func plainKind(name string, width int) *ObstacleKind {
	return &ObstacleKind{Name: name, Width: width, Glyph: '#'}
}

func turtleKind() *ObstacleKind {
	return &ObstacleKind{
		Name:      "two_turtles",
		Width:     130,
		Glyph:     'O',
		Submerges: true,
		Animation: &config.AnimationConfig{
			Sequence: []int{0, 1, 2, 3, 3, 2, 1, 0, 0},
			Rate:     200 * time.Millisecond,
			Loop:     true,
		},
	}
}

func goalKind() *ObstacleKind {
	return &ObstacleKind{Name: "goal", Width: 78, Fixed: true}
}

func markerKind() *ObstacleKind {
	return &ObstacleKind{Name: config.GoalMarkerType, Width: 78, Fixed: true}
}

// runUntil runs frames until cond holds or the limit is reached.
func runUntil(e *Engine, limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		if cond() {
			return true
		}
		e.Frame()
	}
	return cond()
}
