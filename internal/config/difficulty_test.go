package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyLoopPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		loopDelay float64
		speed     float64
	}{
		{DifficultyEasy, 1.0, 0.1},
		{DifficultyNormal, 0.5, 0.5},
		{DifficultyHard, 0.25, 0.9},
		{DifficultyFixed, 0.5, 0.0},
	}

	for _, tt := range tests {
		cfg := DefaultLoopConfig()
		ApplyLoopPreset(&cfg, tt.preset)
		if cfg.Sliders.LoopDelay.Default != tt.loopDelay {
			t.Errorf("%s: loop delay = %v, expected %v", tt.preset, cfg.Sliders.LoopDelay.Default, tt.loopDelay)
		}
		if cfg.Sliders.SpeedMultiplier.Default != tt.speed {
			t.Errorf("%s: speed = %v, expected %v", tt.preset, cfg.Sliders.SpeedMultiplier.Default, tt.speed)
		}
	}
}

func TestApplyLoopPresetClampsToRange(t *testing.T) {
	cfg := DefaultLoopConfig()
	cfg.Sliders.SpeedMultiplier.Max = 0.5
	ApplyLoopPreset(&cfg, DifficultyHard)
	if cfg.Sliders.SpeedMultiplier.Default != 0.5 {
		t.Errorf("speed = %v, expected clamp to 0.5", cfg.Sliders.SpeedMultiplier.Default)
	}
}

func TestApplyLoopPresetFixedKeepsDelay(t *testing.T) {
	cfg := DefaultLoopConfig()
	cfg.Sliders.LoopDelay.Default = 0.8
	ApplyLoopPreset(&cfg, DifficultyFixed)
	if cfg.Sliders.LoopDelay.Default != 0.8 {
		t.Errorf("fixed preset changed loop delay to %v", cfg.Sliders.LoopDelay.Default)
	}
	sp := cfg.Sliders.SpeedMultiplier
	if sp.Default != 0 || sp.Min != 0 || sp.Max != 0 {
		t.Errorf("fixed preset speed slider = %+v, expected locked at 0", sp)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fixed preset config invalid: %v", err)
	}
}

func TestApplyLoopPresetUnknown(t *testing.T) {
	cfg := DefaultLoopConfig()
	ApplyLoopPreset(&cfg, DifficultyPreset("bogus"))
	if cfg != DefaultLoopConfig() {
		t.Error("unknown preset should leave config untouched")
	}
}
