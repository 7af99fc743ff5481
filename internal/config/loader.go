package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

// LoadLoop loads the loop game configuration.
// Search order: customPath -> ~/.arcade/configs/loop.{yaml,toml} ->
// ./configs/loop.{yaml,toml} -> embedded default -> hardcoded default.
// Files only need to set the keys they override.
func LoadLoop(customPath string) (LoopConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var candidates []string
	// Try user config directory
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, "loop.yaml"),
			filepath.Join(dir, "loop.toml"),
		)
	}
	// Try local configs directory
	candidates = append(candidates,
		filepath.Join("configs", "loop.yaml"),
		filepath.Join("configs", "loop.toml"),
	)

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := decodeFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultLoopConfig()
	if err := yaml.Unmarshal(defaultLoopYAML, &cfg); err != nil {
		return DefaultLoopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads path over the hardcoded defaults, picking the
// decoder from the extension.
func decodeFile(path string) (LoopConfig, error) {
	cfg := DefaultLoopConfig()

	if isTOML(path) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// ApplyLoopPreset moves the slider starting values to the preset's.
// The fixed preset keeps the loop delay default and pins the speed slider
// to zero, so the interval never shrinks.
func ApplyLoopPreset(cfg *LoopConfig, preset DifficultyPreset) {
	loopDelay, speed, ok := PresetSliders(preset)
	if !ok {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Sliders.SpeedMultiplier.Min = 0
		cfg.Sliders.SpeedMultiplier.Max = 0
		cfg.Sliders.SpeedMultiplier.Default = 0
		return
	}
	cfg.Sliders.LoopDelay.Default = core.ClampF(loopDelay, cfg.Sliders.LoopDelay.Min, cfg.Sliders.LoopDelay.Max)
	cfg.Sliders.SpeedMultiplier.Default = core.ClampF(speed, cfg.Sliders.SpeedMultiplier.Min, cfg.Sliders.SpeedMultiplier.Max)
}
