// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake games.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all tunables for one snake variant.
type SnakeConfig struct {
	Board     BoardConfig    `yaml:"board"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Effects   EffectsConfig  `yaml:"effects"`
	Timing    TimingConfig   `yaml:"timing"`
	Input     InputConfig    `yaml:"input"`
	Music     MusicConfig    `yaml:"music"`
	Phases    []PhaseConfig  `yaml:"phases"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size"` // Cells per side; the board is Size x Size
}

// ObstacleConfig defines obstacle placement and when they become edible.
type ObstacleConfig struct {
	Count int `yaml:"count"`
	// EdibleFromPhase is the first phase index in which touching an obstacle
	// consumes it instead of ending the game. Negative means never.
	EdibleFromPhase int `yaml:"edible_from_phase"`
}

// EffectsConfig defines the freeze / speed modifier / immunity sequence.
type EffectsConfig struct {
	FreezeEvery      int           `yaml:"freeze_every"` // Food count modulus; 0 disables
	FreezeDuration   time.Duration `yaml:"freeze_duration"`
	ModifierDuration time.Duration `yaml:"modifier_duration"`
	ImmunityDuration time.Duration `yaml:"immunity_duration"`
	BannerDuration   time.Duration `yaml:"banner_duration"`
	FastFactor       float64       `yaml:"fast_factor"` // Tick interval multiplier when sped up
	SlowFactor       float64       `yaml:"slow_factor"` // Tick interval multiplier when slowed down
	MinInterval      time.Duration `yaml:"min_interval"`
}

// TimingConfig defines timestep driver limits.
type TimingConfig struct {
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"`
}

// InputConfig defines input classification parameters.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Minimum drag distance in cells
}

// MusicConfig toggles the chapter soundtrack.
type MusicConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Volume    float64       `yaml:"volume"` // 0.0 - 1.0
	Crossfade time.Duration `yaml:"crossfade"`
}

// PhaseConfig describes one chapter of a session.
type PhaseConfig struct {
	Name      string        `yaml:"name"`
	Theme     string        `yaml:"theme"`
	Threshold int           `yaml:"threshold"` // Score needed to unlock
	Interval  time.Duration `yaml:"interval"`  // Base tick interval
}

// MinBoardSize is the smallest board that fits the starting snake.
const MinBoardSize = 6

// Validate reports the first inconsistency in the configuration.
func (c SnakeConfig) Validate() error {
	if c.Board.Size < MinBoardSize {
		return fmt.Errorf("config: board size %d is below minimum %d", c.Board.Size, MinBoardSize)
	}
	cells := c.Board.Size * c.Board.Size
	if c.Obstacles.Count < 0 || c.Obstacles.Count > cells/4 {
		return fmt.Errorf("config: obstacle count %d out of range [0, %d]", c.Obstacles.Count, cells/4)
	}
	if len(c.Phases) == 0 {
		return errors.New("config: at least one phase is required")
	}
	if c.Phases[0].Threshold != 0 {
		return fmt.Errorf("config: first phase must unlock at score 0, got %d", c.Phases[0].Threshold)
	}
	for i, p := range c.Phases {
		if p.Interval <= 0 {
			return fmt.Errorf("config: phase %d (%s) has non-positive interval", i, p.Name)
		}
		if i > 0 && p.Threshold <= c.Phases[i-1].Threshold {
			return fmt.Errorf("config: phase %d (%s) threshold %d must exceed previous %d",
				i, p.Name, p.Threshold, c.Phases[i-1].Threshold)
		}
	}
	e := c.Effects
	if e.FreezeEvery < 0 {
		return fmt.Errorf("config: freeze_every must not be negative, got %d", e.FreezeEvery)
	}
	if e.FreezeDuration < 0 || e.ModifierDuration < 0 || e.ImmunityDuration < 0 || e.BannerDuration < 0 {
		return errors.New("config: effect durations must not be negative")
	}
	if e.FastFactor <= 0 || e.SlowFactor <= 0 {
		return fmt.Errorf("config: speed factors must be positive (fast=%v slow=%v)", e.FastFactor, e.SlowFactor)
	}
	if e.MinInterval <= 0 {
		return errors.New("config: min_interval must be positive")
	}
	if c.Timing.MaxTicksPerFrame <= 0 {
		return fmt.Errorf("config: max_ticks_per_frame must be positive, got %d", c.Timing.MaxTicksPerFrame)
	}
	if c.Music.Volume < 0 || c.Music.Volume > 1 {
		return fmt.Errorf("config: music volume %v out of range [0, 1]", c.Music.Volume)
	}
	return nil
}
