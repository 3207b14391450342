package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kaboom/internal/registry"
	"github.com/vovakirdan/kaboom/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top runs for the specified variant.

The run id printed after a game over can be looked up with --run.

Examples:
  kaboom scores kaboom
  kaboom scores kaboom-lite --limit 25
  kaboom scores kaboom --all
  kaboom scores kaboom --clear
  kaboom scores --run <run id>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every stored run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the variant")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show one run by its run id")
}

func runScores(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagScoresRun != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		return showRun(out, store, flagScoresRun)
	}

	if len(args) == 0 {
		return errors.New("scores needs a variant (run 'kaboom list')")
	}
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown variant %q (run 'kaboom list')", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("cleared scores", "game", gameID)
		fmt.Fprintf(out, "Cleared all runs of %s.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'kaboom play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-6s  %-5s  %-7s  %-16s  %s\n", "Rank", "Score", "Tokens", "Level", "Result", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-7s  %-6s  %-5s  %-7s  %-16s  %s\n", "----", "-----", "------", "-----", "------", "----", "---")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-7d  %-6d  %-5d  %-7s  %-16s  %s\n",
			i+1, e.Score, e.Tokens, e.Level, result(e), e.CreatedAt.Format("2006-01-02 15:04"), e.RunID)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Cleared: %d  Tokens: %d\n",
			stats.HighScore, stats.GamesCount, stats.Victories, stats.TotalTokens)
	}
	return nil
}

// showRun prints one stored run.
func showRun(out io.Writer, store *storage.Store, runID string) error {
	e, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	fmt.Fprintf(out, "Run:     %s\n", e.RunID)
	fmt.Fprintf(out, "Variant: %s\n", e.GameID)
	fmt.Fprintf(out, "Score:   %d\n", e.Score)
	fmt.Fprintf(out, "Tokens:  %d\n", e.Tokens)
	fmt.Fprintf(out, "Level:   %d\n", e.Level)
	fmt.Fprintf(out, "Result:  %s\n", result(*e))
	fmt.Fprintf(out, "Date:    %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func result(e storage.ScoreEntry) string {
	if e.Victory {
		return "cleared"
	}
	return "-"
}
