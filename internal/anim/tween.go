// Package anim holds the frame-clock driven animation primitives of the
// mood screen. Nothing here spawns goroutines; the UI loop evaluates every
// driver once per frame.
package anim

import "time"

// Tween is a linear timed transition of one scalar.
type Tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
}

// NewTween returns a tween resting at value.
func NewTween(value float64, duration time.Duration) Tween {
	return Tween{from: value, to: value, duration: duration}
}

// Value returns the scalar at now.
func (t Tween) Value(now time.Time) float64 {
	if t.duration <= 0 || t.start.IsZero() {
		return t.to
	}
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return t.from
	}
	if elapsed >= t.duration {
		return t.to
	}
	frac := float64(elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*frac
}

// Retarget starts a transition from the value at now toward to. An
// in-flight transition is superseded without a jump.
func (t *Tween) Retarget(now time.Time, to float64) {
	t.from = t.Value(now)
	t.to = to
	t.start = now
}

// Restart starts a transition from an explicit value.
func (t *Tween) Restart(now time.Time, from, to float64) {
	t.from = from
	t.to = to
	t.start = now
}

// Done reports whether the transition has reached its target at now.
func (t Tween) Done(now time.Time) bool {
	return t.duration <= 0 || t.start.IsZero() || now.Sub(t.start) >= t.duration
}

// Target is the value the tween is heading to.
func (t Tween) Target() float64 {
	return t.to
}
