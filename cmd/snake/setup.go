package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// newLogger builds the process logger from the global flags.
// Interactive commands pass quiet: stderr output would corrupt the
// alternate screen, so without --log-file their logs are discarded.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Failure is logged and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// applyGameFlags validates and installs --config and --difficulty.
// It loads the variant's config once so a broken file fails before the
// terminal switches to the alternate screen.
func applyGameFlags(variant string) (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(preset)
	return snake.LoadConfig(variant)
}

// player owns what outlives a single game: the score store and the
// music. Both are optional.
type player struct {
	logger  *log.Logger
	store   *storage.Store
	jukebox *audio.Jukebox
}

func newPlayer(logger *log.Logger) *player {
	return &player{logger: logger, store: openStore(logger)}
}

// enableMusic starts the soundtrack if cfg asks for it. A missing audio
// device only disables music.
func (p *player) enableMusic(cfg config.SnakeConfig) {
	if flagMute || !cfg.Music.Enabled || p.jukebox != nil {
		return
	}
	jb := audio.NewJukebox(audio.Options{
		Volume:    cfg.Music.Volume,
		Crossfade: cfg.Music.Crossfade,
		Logger:    p.logger,
	})
	if err := jb.Init(); err != nil {
		p.logger.Warn("music disabled", "error", err)
		return
	}
	p.jukebox = jb
}

// services returns the collaborators handed to each game.
func (p *player) services() core.Services {
	svc := core.Services{Logger: p.logger}
	if p.store != nil {
		svc.Scores = p.store
	}
	if p.jukebox != nil {
		svc.Listener = p.jukebox
	}
	return svc
}

// newGame creates a variant wired to the player's collaborators.
func (p *player) newGame(variant string) (registry.Game, error) {
	game, err := registry.Create(variant)
	if err != nil {
		return nil, err
	}
	game.Attach(p.services())
	return game, nil
}

func (p *player) close() {
	if p.jukebox != nil {
		p.jukebox.Close()
	}
	if p.store != nil {
		p.store.Close()
	}
}
