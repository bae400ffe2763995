package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/snake_classic.yaml
var defaultClassicYAML []byte

// Variant identifiers. They double as registry IDs and score keys.
const (
	VariantChapters = "snake"
	VariantClassic  = "snake_classic"
)

// DefaultSnakeConfig returns the hardcoded chapters configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{Size: 20},
		Obstacles: ObstacleConfig{
			Count:           6,
			EdibleFromPhase: 1,
		},
		Effects: EffectsConfig{
			FreezeEvery:      5,
			FreezeDuration:   10 * time.Second,
			ModifierDuration: 60 * time.Second,
			ImmunityDuration: 3 * time.Second,
			BannerDuration:   2500 * time.Millisecond,
			FastFactor:       0.4,
			SlowFactor:       2.0,
			MinInterval:      60 * time.Millisecond,
		},
		Timing: TimingConfig{MaxTicksPerFrame: 64},
		Input:  InputConfig{SwipeThreshold: 3},
		Music: MusicConfig{
			Enabled:   true,
			Volume:    0.35,
			Crossfade: 1500 * time.Millisecond,
		},
		Phases: []PhaseConfig{
			{Name: "Prologue: The Meadow", Theme: "meadow", Threshold: 0, Interval: 200 * time.Millisecond},
			{Name: "Chapter I: Frostbite", Theme: "frost", Threshold: 5, Interval: 170 * time.Millisecond},
			{Name: "Chapter II: Embers", Theme: "ember", Threshold: 12, Interval: 140 * time.Millisecond},
			{Name: "Chapter III: The Void", Theme: "void", Threshold: 20, Interval: 115 * time.Millisecond},
		},
	}
}

// DefaultClassicConfig returns the hardcoded classic configuration.
func DefaultClassicConfig() SnakeConfig {
	cfg := DefaultSnakeConfig()
	cfg.Obstacles = ObstacleConfig{Count: 0, EdibleFromPhase: -1}
	cfg.Effects.FreezeEvery = 0
	cfg.Effects.FreezeDuration = 0
	cfg.Effects.ModifierDuration = 0
	cfg.Effects.ImmunityDuration = 0
	cfg.Effects.BannerDuration = 2 * time.Second
	cfg.Music = MusicConfig{Enabled: false, Volume: 0.35, Crossfade: time.Second}
	cfg.Phases = []PhaseConfig{
		{Name: "Classic", Theme: "classic", Threshold: 0, Interval: 200 * time.Millisecond},
	}
	return cfg
}

// DefaultFor returns the hardcoded configuration for a variant.
func DefaultFor(variant string) SnakeConfig {
	if variant == VariantClassic {
		return DefaultClassicConfig()
	}
	return DefaultSnakeConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantChapters:
		return defaultSnakeYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
