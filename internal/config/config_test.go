package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLoopConfigValid(t *testing.T) {
	if err := DefaultLoopConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if len(defaultLoopYAML) == 0 {
		t.Fatal("embedded loop.yaml is empty")
	}

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadLoop("")
	if err != nil {
		t.Fatalf("LoadLoop failed: %v", err)
	}
	if cfg != DefaultLoopConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultLoopConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LoopConfig)
	}{
		{"zero positions", func(c *LoopConfig) { c.Wheel.Positions = 0 }},
		{"negative floor", func(c *LoopConfig) { c.Wheel.IntervalFloor = -1 }},
		{"negative points per hit", func(c *LoopConfig) { c.Scoring.PointsPerHit = -10 }},
		{"min above max", func(c *LoopConfig) { c.Sliders.LoopDelay.Min = 2 }},
		{"default out of range", func(c *LoopConfig) { c.Sliders.LoopDelay.Default = 5 }},
		{"zero step", func(c *LoopConfig) { c.Sliders.SpeedMultiplier.Step = 0 }},
		{"zero loop delay min", func(c *LoopConfig) { c.Sliders.LoopDelay.Min = 0 }},
		{"speed reaches one", func(c *LoopConfig) { c.Sliders.SpeedMultiplier.Max = 1 }},
		{"negative reload delay", func(c *LoopConfig) { c.Effects.ReloadDelay = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLoopConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadLoopCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("wheel:\n  positions: 12\nscoring:\n  points_per_hit: 25\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLoop(path)
	if err != nil {
		t.Fatalf("LoadLoop failed: %v", err)
	}
	if cfg.Wheel.Positions != 12 {
		t.Errorf("Positions = %d, expected 12", cfg.Wheel.Positions)
	}
	if cfg.Scoring.PointsPerHit != 25 {
		t.Errorf("PointsPerHit = %v, expected 25", cfg.Scoring.PointsPerHit)
	}
	// Unset keys keep their defaults.
	if cfg.Sliders.LoopDelay.Default != 0.5 {
		t.Errorf("LoopDelay.Default = %v, expected 0.5", cfg.Sliders.LoopDelay.Default)
	}
}

func TestLoadLoopCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[wheel]\npositions = 6\n\n[effects]\nmute = true\nreload_delay = 2.0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLoop(path)
	if err != nil {
		t.Fatalf("LoadLoop failed: %v", err)
	}
	if cfg.Wheel.Positions != 6 {
		t.Errorf("Positions = %d, expected 6", cfg.Wheel.Positions)
	}
	if !cfg.Effects.Mute {
		t.Error("Mute should be true")
	}
	if cfg.Effects.ReloadDelay != 2.0 {
		t.Errorf("ReloadDelay = %v, expected 2.0", cfg.Effects.ReloadDelay)
	}
	if cfg.Wheel.IntervalFloor != 0.1 {
		t.Errorf("IntervalFloor = %v, expected default 0.1", cfg.Wheel.IntervalFloor)
	}
}

func TestLoadLoopCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLoop(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("wheel: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLoop(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	if err := os.WriteFile(invalid, []byte("[wheel]\npositions = -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLoop(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadLoop(invalid) = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadLoopSearchOrder(t *testing.T) {
	work := t.TempDir()
	home := t.TempDir()
	t.Chdir(work)
	t.Setenv("HOME", home)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "loop.toml"), []byte("[wheel]\npositions = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLoop("")
	if err != nil {
		t.Fatalf("LoadLoop failed: %v", err)
	}
	if cfg.Wheel.Positions != 4 {
		t.Errorf("local config: Positions = %d, expected 4", cfg.Wheel.Positions)
	}

	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "loop.yaml"), []byte("wheel:\n  positions: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadLoop("")
	if err != nil {
		t.Fatalf("LoadLoop failed: %v", err)
	}
	if cfg.Wheel.Positions != 9 {
		t.Errorf("user config should win: Positions = %d, expected 9", cfg.Wheel.Positions)
	}
}

func TestLoadLoopSkipsInvalidSearchFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "loop.yaml"), []byte("wheel:\n  positions: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLoop("")
	if err != nil {
		t.Fatalf("LoadLoop failed: %v", err)
	}
	if cfg.Wheel.Positions != 8 {
		t.Errorf("invalid local file should be skipped: Positions = %d", cfg.Wheel.Positions)
	}
}
