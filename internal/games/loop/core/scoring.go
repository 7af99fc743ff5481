package core

import "errors"

// ErrInvalidPoints is returned when the base award per hit is negative.
var ErrInvalidPoints = errors.New("loop: points per hit must not be negative")

// Scorer accumulates points. The total never decreases.
type Scorer struct {
	pointsPerHit float64
	total        float64
	hits         int
}

// NewScorer creates a scorer awarding pointsPerHit as the base for every hit.
func NewScorer(pointsPerHit float64) *Scorer {
	return &Scorer{pointsPerHit: pointsPerHit}
}

// Award adds pointsPerHit * (1 + multiplier) and returns the amount added.
func (s *Scorer) Award(multiplier float64) float64 {
	gained := s.pointsPerHit + s.pointsPerHit*multiplier
	s.total += gained
	s.hits++
	return gained
}

// Total returns the accumulated points.
func (s *Scorer) Total() float64 { return s.total }

// Hits returns how many awards were made.
func (s *Scorer) Hits() int { return s.hits }

// PointsPerHit returns the base award.
func (s *Scorer) PointsPerHit() float64 { return s.pointsPerHit }
