package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kaboom/internal/registry"
	"github.com/vovakirdan/kaboom/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered kaboom variant with its stored run count and best score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := playedStats()

	fmt.Fprintf(out, "  %-*s  %4s  %6s  %s\n", maxIDLen, "ID", "Runs", "Best", "Title")
	fmt.Fprintf(out, "  %-*s  %4s  %6s  %s\n", maxIDLen, "--", "----", "----", "-----")
	for _, g := range games {
		line := g.Title
		if g.Description != "" {
			line += " - " + g.Description
		}
		runs, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			runs, best = st.GamesCount, st.HighScore
		}
		fmt.Fprintf(out, "  %-*s  %4d  %6d  %s\n", maxIDLen, g.ID, runs, best, line)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'kaboom play <id>' to play.")
}

// playedStats loads the per-variant totals. The list still prints without them.
func playedStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		logger.Warn("could not load run totals", "error", err)
		return nil
	}
	return stats
}
