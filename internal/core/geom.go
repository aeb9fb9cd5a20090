// Package core provides fundamental types and utilities shared by the engine
// and the terminal front end. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Interval is a closed horizontal span in board pixels.
type Interval struct {
	Left, Right int
}

// NewInterval creates an interval starting at left with the given width.
func NewInterval(left, width int) Interval {
	return Interval{Left: left, Right: left + width}
}

// Width returns the length of the interval.
func (i Interval) Width() int {
	return i.Right - i.Left
}

// HorizontallyIntersects reports whether two intervals overlap on the
// horizontal axis. Vertical alignment is implied by row membership and is not
// checked. Touching endpoints (a.Right == b.Left) do not count as overlap.
func HorizontallyIntersects(a, b Interval) bool {
	return a.Left < b.Right && b.Left < a.Right
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
