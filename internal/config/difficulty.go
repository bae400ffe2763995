package config

import (
	"fmt"
	"math"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IntervalScaleForPreset returns the tick interval multiplier for a preset.
// Larger intervals mean a slower snake.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables chapter progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// scaleDuration multiplies a duration, rounding to the nearest nanosecond.
// A positive duration never scales to zero.
func scaleDuration(d time.Duration, factor float64) time.Duration {
	scaled := time.Duration(math.Round(float64(d) * factor))
	if d > 0 && scaled <= 0 {
		return 1
	}
	return scaled
}
