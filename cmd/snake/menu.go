package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant,
Tab for the scoreboard. Press B in a game to come back here.

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	p := newPlayer(logger)
	defer p.close()

	var scores core.HighScoreStore
	var source tui.ScoreSource
	opts := tui.Options{Logger: logger}
	if p.store != nil {
		scores, source, opts.Scores = p.store, p.store, p.store
	}

	cfg := terminalConfig()
	for {
		res, err := tui.RunMenu(scores, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(source, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		gameCfg, err := applyGameFlags(res.GameID)
		if err != nil {
			return err
		}
		p.enableMusic(gameCfg)

		game, err := p.newGame(res.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// A fresh model per game; leaving with B returns to the menu.
		model, err := tui.RunModel(game, cfg, opts)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !model.BackToMenu() {
			return nil
		}
	}
}
