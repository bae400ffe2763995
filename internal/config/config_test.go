package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, variant := range []string{VariantChapters, VariantClassic} {
		t.Run(variant, func(t *testing.T) {
			embedded := loadEmbedded(variant)
			hard := DefaultFor(variant)

			if err := embedded.Validate(); err != nil {
				t.Fatalf("embedded config invalid: %v", err)
			}
			if embedded.Board.Size != hard.Board.Size {
				t.Errorf("board size %d vs hardcoded %d", embedded.Board.Size, hard.Board.Size)
			}
			if len(embedded.Phases) != len(hard.Phases) {
				t.Fatalf("phase count %d vs hardcoded %d", len(embedded.Phases), len(hard.Phases))
			}
			for i := range hard.Phases {
				if embedded.Phases[i] != hard.Phases[i] {
					t.Errorf("phase %d: %+v vs hardcoded %+v", i, embedded.Phases[i], hard.Phases[i])
				}
			}
			if embedded.Effects != hard.Effects {
				t.Errorf("effects %+v vs hardcoded %+v", embedded.Effects, hard.Effects)
			}
		})
	}
}

func TestParseOverridesOnlyNamedKeys(t *testing.T) {
	cfg, err := Parse(VariantChapters, []byte("board:\n  size: 12\neffects:\n  freeze_duration: 4s\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Board.Size != 12 {
		t.Errorf("board size = %d, expected 12", cfg.Board.Size)
	}
	if cfg.Effects.FreezeDuration != 4*time.Second {
		t.Errorf("freeze duration = %v, expected 4s", cfg.Effects.FreezeDuration)
	}
	if cfg.Effects.FreezeEvery != 5 {
		t.Errorf("unnamed keys should keep defaults, freeze_every = %d", cfg.Effects.FreezeEvery)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "obstacles:\n  count: 2\n  edible_from_phase: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantChapters, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.Count != 2 || cfg.Obstacles.EdibleFromPhase != 0 {
		t.Errorf("obstacles = %+v", cfg.Obstacles)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(VariantChapters, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(VariantChapters, path)
	if err == nil || !strings.Contains(err.Error(), "board size") {
		t.Errorf("invalid custom config should fail validation, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		want   string
	}{
		{"valid", func(*SnakeConfig) {}, ""},
		{"small board", func(c *SnakeConfig) { c.Board.Size = 4 }, "board size"},
		{"too many obstacles", func(c *SnakeConfig) { c.Obstacles.Count = 1000 }, "obstacle count"},
		{"no phases", func(c *SnakeConfig) { c.Phases = nil }, "at least one phase"},
		{"first threshold", func(c *SnakeConfig) { c.Phases[0].Threshold = 3 }, "first phase"},
		{"unordered thresholds", func(c *SnakeConfig) { c.Phases[2].Threshold = 5 }, "must exceed"},
		{"zero interval", func(c *SnakeConfig) { c.Phases[1].Interval = 0 }, "non-positive interval"},
		{"negative modulus", func(c *SnakeConfig) { c.Effects.FreezeEvery = -1 }, "freeze_every"},
		{"zero factor", func(c *SnakeConfig) { c.Effects.FastFactor = 0 }, "speed factors"},
		{"zero ticks", func(c *SnakeConfig) { c.Timing.MaxTicksPerFrame = 0 }, "max_ticks_per_frame"},
		{"loud", func(c *SnakeConfig) { c.Music.Volume = 2 }, "volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Phases[0].Interval != 150*time.Millisecond {
		t.Errorf("hard phase 0 interval = %v, expected 150ms", cfg.Phases[0].Interval)
	}

	cfg = DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Phases[0].Interval != 250*time.Millisecond {
		t.Errorf("easy phase 0 interval = %v, expected 250ms", cfg.Phases[0].Interval)
	}

	cfg = DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if len(cfg.Phases) != 1 {
		t.Errorf("fixed preset should keep a single phase, got %d", len(cfg.Phases))
	}
}

func TestApplyPresetSubMillisecond(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Phases[0].Interval = 900 * time.Microsecond
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Phases[0].Interval != 675*time.Microsecond {
		t.Errorf("hard phase 0 interval = %v, expected 675µs", cfg.Phases[0].Interval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after preset = %v", err)
	}
}

func TestScaleDurationKeepsPositive(t *testing.T) {
	tests := []struct {
		d      time.Duration
		factor float64
		want   time.Duration
	}{
		{200 * time.Millisecond, 0.75, 150 * time.Millisecond},
		{900 * time.Microsecond, 1.25, 1125 * time.Microsecond},
		{1, 0.25, 1},
		{0, 0.75, 0},
	}
	for _, tt := range tests {
		if got := scaleDuration(tt.d, tt.factor); got != tt.want {
			t.Errorf("scaleDuration(%v, %v) = %v, want %v", tt.d, tt.factor, got, tt.want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
