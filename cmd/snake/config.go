package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the default config of a variant",
	Long: `Print the built-in YAML config of a variant (default: snake).
Save it to ~/.snake/configs/<variant>.yaml and edit it to customize the game,
or pass it with --config.

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config snake_classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	variant := config.VariantChapters
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q", variant)
	}
	_, err := os.Stdout.Write(config.GetDefaultYAML(variant))
	return err
}
