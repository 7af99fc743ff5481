// Package core implements the timing and state engine of the Loop game.
// It has no platform dependencies: time comes in as seconds, input as
// discrete calls, and every presentation concern leaves through Effects.
package core

// Slider is a normalized control value together with its allowed range.
type Slider struct {
	Value float64
	Min   float64
	Max   float64
}

// Clamp returns the slider with Value restricted to [Min, Max].
func (s Slider) Clamp() Slider {
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
	return s
}

// Nudge moves the value by delta and clamps it.
func (s Slider) Nudge(delta float64) Slider {
	s.Value += delta
	return s.Clamp()
}

// Difficulty is resolved once when a session starts and never changes afterwards.
type Difficulty struct {
	InitialInterval float64 // Seconds between wheel advances at start
	DecayFraction   float64 // Fraction removed from the interval on every hit
	ScoreMultiplier float64 // (loopDelay + speed) / (loopDelayMax + speedMax)
}

// NewDifficulty derives the session difficulty from the two start sliders.
// Values are expected to be clamped already.
func NewDifficulty(loopDelay, speedMultiplier Slider) Difficulty {
	d := Difficulty{
		InitialInterval: loopDelay.Value,
		DecayFraction:   speedMultiplier.Value,
	}
	if maxSum := loopDelay.Max + speedMultiplier.Max; maxSum > 0 {
		d.ScoreMultiplier = (loopDelay.Value + speedMultiplier.Value) / maxSum
	}
	return d
}
