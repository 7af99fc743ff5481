package config

import (
	_ "embed"
)

//go:embed defaults/loop.yaml
var defaultLoopYAML []byte

// DefaultLoopConfig returns the default loop game configuration.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		Wheel: WheelConfig{
			Positions:     8,
			IntervalFloor: 0.1,
		},
		Scoring: ScoringConfig{
			PointsPerHit: 10,
		},
		Sliders: SlidersConfig{
			LoopDelay: SliderConfig{
				Min:     0.1,
				Max:     1.0,
				Default: 0.5,
				Step:    0.05,
			},
			SpeedMultiplier: SliderConfig{
				Min:     0.0,
				Max:     0.99,
				Default: 0.5,
				Step:    0.05,
			},
		},
		Effects: EffectsConfig{
			ShakeAmplitude: 0.05,
			ShakeDuration:  0.5,
			ReloadDelay:    1.0,
		},
	}
}
