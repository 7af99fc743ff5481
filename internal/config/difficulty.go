package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// PresetSliders returns the starting loop delay and speed multiplier for a preset.
func PresetSliders(preset DifficultyPreset) (loopDelay, speedMultiplier float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 1.0, 0.1, true
	case DifficultyNormal:
		return 0.5, 0.5, true
	case DifficultyHard:
		return 0.25, 0.9, true
	case DifficultyFixed:
		return 0.5, 0.0, true
	default:
		return 0, 0, false
	}
}

// IsFixedPreset returns true if the preset locks the speed-up at zero.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
