package core

import (
	"errors"
	"fmt"
)

// IntervalFloor is the interval (seconds) below which hits stop shrinking it.
const IntervalFloor = 0.1

// ErrInvalidPositions is returned when a ring is built with no slots.
var ErrInvalidPositions = errors.New("loop: position count must be positive")

// Wheel owns the marker position on the ring and its advance cadence.
type Wheel struct {
	positions    int
	index        int
	forward      bool
	interval     float64
	floor        float64
	nextDeadline float64
}

// NewWheel creates a wheel at slot 0 moving forward.
// The first Advance call moves the marker immediately.
func NewWheel(positions int, interval float64) (*Wheel, error) {
	if positions <= 0 {
		return nil, fmt.Errorf("new wheel: %w (got %d)", ErrInvalidPositions, positions)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("new wheel: interval must be positive (got %v)", interval)
	}
	return &Wheel{
		positions: positions,
		forward:   true,
		interval:  interval,
		floor:     IntervalFloor,
	}, nil
}

// Advance moves the marker one slot if the deadline has passed.
// A long stall between calls still yields a single step.
func (w *Wheel) Advance(now float64) bool {
	if now < w.nextDeadline {
		return false
	}
	w.nextDeadline = now + w.interval

	last := w.positions - 1
	if w.forward {
		if w.index < last {
			w.index++
		} else {
			w.index = 0
		}
	} else {
		if w.index > 0 {
			w.index--
		} else {
			w.index = last
		}
	}
	return true
}

// Reverse flips the sweep direction.
func (w *Wheel) Reverse() {
	w.forward = !w.forward
}

// Shrink multiplies the interval by (1 - decay) while it is above the floor.
func (w *Wheel) Shrink(decay float64) {
	if w.interval > w.floor {
		w.interval *= 1 - decay
	}
}

// SetFloor overrides the shrink floor. Non-positive values are ignored.
func (w *Wheel) SetFloor(floor float64) {
	if floor > 0 {
		w.floor = floor
	}
}

// Floor returns the interval below which Shrink is a no-op.
func (w *Wheel) Floor() float64 { return w.floor }

// Index returns the current marker slot.
func (w *Wheel) Index() int { return w.index }

// Positions returns the ring size.
func (w *Wheel) Positions() int { return w.positions }

// Forward reports whether the marker moves towards higher indices.
func (w *Wheel) Forward() bool { return w.forward }

// Interval returns the current seconds between advances.
func (w *Wheel) Interval() float64 { return w.interval }

// NextDeadline returns the game time of the next advance.
func (w *Wheel) NextDeadline() float64 { return w.nextDeadline }
