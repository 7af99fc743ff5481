// Package config provides YAML/TOML game configuration loading and
// difficulty presets for the loop game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// LoopConfig contains all configuration for the loop game.
type LoopConfig struct {
	Wheel   WheelConfig   `yaml:"wheel" toml:"wheel"`
	Scoring ScoringConfig `yaml:"scoring" toml:"scoring"`
	Sliders SlidersConfig `yaml:"sliders" toml:"sliders"`
	Effects EffectsConfig `yaml:"effects" toml:"effects"`
}

// WheelConfig defines the ring the marker sweeps.
type WheelConfig struct {
	Positions     int     `yaml:"positions" toml:"positions"`           // Slots on the ring
	IntervalFloor float64 `yaml:"interval_floor" toml:"interval_floor"` // Seconds; hits stop shrinking below this
}

// ScoringConfig defines the award per hit.
type ScoringConfig struct {
	PointsPerHit float64 `yaml:"points_per_hit" toml:"points_per_hit"`
}

// SlidersConfig defines the two start-screen sliders.
type SlidersConfig struct {
	LoopDelay       SliderConfig `yaml:"loop_delay" toml:"loop_delay"`
	SpeedMultiplier SliderConfig `yaml:"speed_multiplier" toml:"speed_multiplier"`
}

// SliderConfig is the range, starting value and key step of one slider.
type SliderConfig struct {
	Min     float64 `yaml:"min" toml:"min"`
	Max     float64 `yaml:"max" toml:"max"`
	Default float64 `yaml:"default" toml:"default"`
	Step    float64 `yaml:"step" toml:"step"`
}

// EffectsConfig defines presentation timings.
type EffectsConfig struct {
	ShakeAmplitude float64 `yaml:"shake_amplitude" toml:"shake_amplitude"`
	ShakeDuration  float64 `yaml:"shake_duration" toml:"shake_duration"` // Seconds
	ReloadDelay    float64 `yaml:"reload_delay" toml:"reload_delay"`     // Seconds between fade out and restart
	Mute           bool    `yaml:"mute" toml:"mute"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config can drive a game.
func (c LoopConfig) Validate() error {
	if c.Wheel.Positions <= 0 {
		return fmt.Errorf("%w: wheel.positions must be positive (got %d)", ErrInvalidConfig, c.Wheel.Positions)
	}
	if c.Scoring.PointsPerHit < 0 || math.IsNaN(c.Scoring.PointsPerHit) {
		return fmt.Errorf("%w: scoring.points_per_hit must not be negative (got %v)", ErrInvalidConfig, c.Scoring.PointsPerHit)
	}
	if c.Wheel.IntervalFloor < 0 {
		return fmt.Errorf("%w: wheel.interval_floor must not be negative", ErrInvalidConfig)
	}
	if err := c.Sliders.LoopDelay.validate("loop_delay"); err != nil {
		return err
	}
	if err := c.Sliders.SpeedMultiplier.validate("speed_multiplier"); err != nil {
		return err
	}
	if c.Sliders.LoopDelay.Min <= 0 {
		return fmt.Errorf("%w: sliders.loop_delay.min must be positive", ErrInvalidConfig)
	}
	if c.Sliders.SpeedMultiplier.Min < 0 || c.Sliders.SpeedMultiplier.Max >= 1 {
		return fmt.Errorf("%w: sliders.speed_multiplier must stay within [0, 1)", ErrInvalidConfig)
	}
	if c.Effects.ReloadDelay < 0 {
		return fmt.Errorf("%w: effects.reload_delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (s SliderConfig) validate(name string) error {
	if s.Min > s.Max {
		return fmt.Errorf("%w: sliders.%s min %v exceeds max %v", ErrInvalidConfig, name, s.Min, s.Max)
	}
	if s.Default < s.Min || s.Default > s.Max {
		return fmt.Errorf("%w: sliders.%s default %v outside [%v, %v]", ErrInvalidConfig, name, s.Default, s.Min, s.Max)
	}
	if s.Step <= 0 {
		return fmt.Errorf("%w: sliders.%s step must be positive", ErrInvalidConfig, name)
	}
	return nil
}
