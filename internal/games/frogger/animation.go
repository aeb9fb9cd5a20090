package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Animation is a frame counter over a sequence of sprite values, advanced by
// engine time. Nothing inside it runs on its own.
type Animation struct {
	sequence []int
	rate     time.Duration
	loop     bool

	frame   int
	elapsed time.Duration
	playing bool
	max     int
}

// NewAnimation creates a stopped animation from its config.
func NewAnimation(cfg config.AnimationConfig) *Animation {
	a := &Animation{
		sequence: append([]int(nil), cfg.Sequence...),
		rate:     cfg.Rate,
		loop:     cfg.Loop,
	}
	for i, v := range a.sequence {
		if i == 0 || v > a.max {
			a.max = v
		}
	}
	return a
}

// Play starts the animation from its first frame. Playing an animation that
// is already running keeps its position.
func (a *Animation) Play() {
	if a.playing {
		return
	}
	a.frame = 0
	a.elapsed = 0
	a.playing = true
}

// Stop freezes the animation on its current frame.
func (a *Animation) Stop() {
	a.playing = false
}

// Reset rewinds to the first frame and stops.
func (a *Animation) Reset() {
	a.frame = 0
	a.elapsed = 0
	a.playing = false
}

// Advance moves the animation forward by dt of engine time.
func (a *Animation) Advance(dt time.Duration) {
	if !a.playing || a.rate <= 0 {
		return
	}
	a.elapsed += dt
	for a.playing && a.elapsed >= a.rate {
		a.elapsed -= a.rate
		a.step()
	}
}

// step moves one frame. Reaching the last index either wraps (loop) or stops,
// so a looping sequence never rests on its final entry.
func (a *Animation) step() {
	if len(a.sequence) < 2 {
		a.playing = false
		return
	}
	a.frame++
	if a.frame >= len(a.sequence)-1 {
		if a.loop {
			a.frame = 0
		} else {
			a.frame = len(a.sequence) - 1
			a.playing = false
		}
	}
}

// Playing reports whether the animation is running.
func (a *Animation) Playing() bool { return a.playing }

// Frame returns the current index into the sequence.
func (a *Animation) Frame() int { return a.frame }

// Value returns the sprite value of the current frame.
func (a *Animation) Value() int {
	if len(a.sequence) == 0 {
		return 0
	}
	return a.sequence[a.frame]
}

// MaxValue returns the largest value in the sequence.
func (a *Animation) MaxValue() int { return a.max }

// AtMax reports whether the current frame shows the sequence maximum.
func (a *Animation) AtMax() bool {
	return len(a.sequence) > 0 && a.Value() == a.max
}
