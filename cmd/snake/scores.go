package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant (default: snake).

Examples:
  snake scores
  snake scores snake_classic --limit 20
  snake scores --recent
  snake scores --tui
  snake scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores of all variants interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest runs instead of the best")
}

func runScores(_ *cobra.Command, args []string) error {
	variant := config.VariantChapters
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		return fmt.Errorf("unknown variant %q", variant)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(variant); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", variant)
		return nil
	}

	return printScores(store, variant)
}

func printScores(store *storage.Store, variant string) error {
	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	heading := "High Scores"
	fetch := store.TopScores
	if flagScoresRecent {
		heading = "Recent Runs"
		fetch = store.RecentScores
	}

	scores, err := fetch(variant, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "Rank", "Score", "Chapter", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "----", "-----", "-------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-7d  %-8s  %s\n",
			i+1, e.Score, e.Chapter+1, e.Cause, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(variant); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(variant); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
