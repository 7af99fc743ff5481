package core

import "math/rand"

// TargetPicker draws the slot the player has to hit.
// Draws are independent, so the same slot may come up twice in a row.
type TargetPicker struct {
	rng *rand.Rand

	// PickFunc, when set, replaces the random draw. Used for scripted rounds.
	PickFunc func(positions int) int
}

// NewTargetPicker creates a picker seeded for reproducible sequences.
func NewTargetPicker(seed int64) *TargetPicker {
	return &TargetPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a slot in [0, positions). It panics if positions <= 0.
func (p *TargetPicker) Pick(positions int) int {
	if p.PickFunc != nil {
		return p.PickFunc(positions)
	}
	return p.rng.Intn(positions)
}
