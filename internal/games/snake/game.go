package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Game adapts a Session to the registry.Game interface: it maps input
// actions onto the session and renders its view.
type Game struct {
	variant  string
	cfg      config.SnakeConfig
	services core.Services
	session  *Session
	screenW  int
	screenH  int
	now      time.Duration
}

// Package-level config selection, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom YAML config path. Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on load.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig resolves the configuration for a variant using the selected
// path and preset.
func LoadConfig(variant string) (config.SnakeConfig, error) {
	cfg, err := config.Load(variant, configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("difficulty %s: %w", difficultyPreset, err)
	}
	return cfg, nil
}

// New creates the chapters variant: obstacles, freezes, speed modifiers and music.
func New() *Game {
	return &Game{variant: config.VariantChapters}
}

// NewClassic creates the classic variant: the plain movement loop.
func NewClassic() *Game {
	return &Game{variant: config.VariantClassic}
}

func init() {
	registry.Register(config.VariantChapters, func() registry.Game {
		return New()
	})
	registry.Register(config.VariantClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == config.VariantClassic {
		return "Snake (Classic)"
	}
	return "Snake: Chapters"
}

// Attach sets the collaborators used by the next Reset.
func (g *Game) Attach(svc core.Services) {
	g.services = svc
}

// Reset loads the configuration and creates a session waiting for start.
// A broken config file falls back to the variant defaults with a warning;
// the CLI validates it up front so this only happens for files edited
// while running.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := LoadConfig(g.variant)
	if err != nil {
		if g.services.Logger != nil {
			g.services.Logger.Warn("using default config", "game", g.variant, "error", err)
		}
		gameCfg = config.DefaultFor(g.variant)
	}
	g.cfg = gameCfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.now = 0
	g.session = NewSession(Options{
		GameID:   g.variant,
		Config:   gameCfg,
		Seed:     cfg.Seed,
		Services: g.services,
	})
}

// SwipeThreshold returns the minimum drag distance, in board cells, that
// counts as a swipe.
func (g *Game) SwipeThreshold() int {
	return g.cfg.Input.SwipeThreshold
}

// Step applies the frame's input and advances the session to now.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	g.now = now
	s := g.session

	switch {
	case in.Has(core.ActionRestart):
		s.Start(now)
	case in.Has(core.ActionStart) && (s.State() == StateNotStarted || s.State() == StateGameOver):
		s.Start(now)
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	if d, ok := directionFor(in.LastDirection()); ok {
		s.Steer(d)
	}

	ticks := s.Frame(now)
	return core.StepResult{State: g.State(), Ticks: ticks}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:     s.Score(),
		HighScore: s.HighScore(),
		GameOver:  s.State() == StateGameOver,
		Paused:    s.State() == StatePaused,
		Started:   s.State() != StateNotStarted,
		Chapter:   s.prog.Index(),
	}
	if st.GameOver {
		st.Cause = s.lastCause.String()
	}
	return st
}

// Theme returns the theme tag of the current phase, for the platform's palette.
func (g *Game) Theme() string {
	if g.session == nil {
		return ""
	}
	return g.session.prog.Phase().Theme
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
