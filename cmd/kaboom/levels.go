package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kaboom/internal/games/kaboom"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalogue",
	Long: `Shows the levels a run plays through, in order: the builtin levels
plus any .yaml or .tmx files from --levels-dir. A file whose id matches a
builtin level replaces it.

Examples:
  kaboom levels
  kaboom levels --levels-dir ./my-levels`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	c := kaboom.Catalogue()

	fmt.Fprintf(out, "  %-3s  %-10s  %-16s  %-9s  %-7s  %s\n", "#", "ID", "Name", "Platforms", "Enemies", "Source")
	fmt.Fprintf(out, "  %-3s  %-10s  %-16s  %-9s  %-7s  %s\n", "-", "--", "----", "---------", "-------", "------")
	for i, l := range c.Levels() {
		src := l.Source
		if src == "" {
			src = "builtin"
		}
		fmt.Fprintf(out, "  %-3d  %-10s  %-16s  %-9d  %-7d  %s\n", i+1, l.ID, l.Name, len(l.Platforms), len(l.Enemies), src)
	}
}
