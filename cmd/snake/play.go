package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: snake).

Controls:
  Arrows/WASD/HJKL - Steer (mouse drag also works)
  Enter            - Start
  P/Esc            - Pause
  R                - Restart
  B                - Leave the game
  ?                - Help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower snake
  normal - Speeds from the config
  hard   - Faster snake
  fixed  - Stay in the first chapter

Examples:
  snake play
  snake play snake_classic
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music")
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := config.VariantChapters
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		return fmt.Errorf("unknown variant %q", variant)
	}

	gameCfg, err := applyGameFlags(variant)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	p := newPlayer(logger)
	defer p.close()
	p.enableMusic(gameCfg)

	game, err := p.newGame(variant)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{Logger: logger}
	if p.store != nil {
		opts.Scores = p.store
	}
	if err := tui.Run(game, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
