package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kaboom/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the default game config",
	Long: `Print the built-in config YAML of a variant (default: kaboom).
Save it to ~/.kaboom/configs/kaboom.yaml, or any path passed with --config,
and edit it to change physics, scoring, items or difficulty.

Examples:
  kaboom config > ~/.kaboom/configs/kaboom.yaml
  kaboom config kaboom-lite > my-kaboom.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "kaboom"
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("unknown variant %q (run 'kaboom list')", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
