package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kaboom/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant, difficulty and level interactively",
	Long: `Start kaboom in interactive menu mode.

After a run ends (press B), you return to the menu to play again.
The last choices are remembered for the next start.

Controls:
  Up/Down/j/k   - Navigate
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Tab           - High scores
  Esc           - Back
  Q             - Quit

Examples:
  kaboom menu
  kaboom menu --fps 30
  kaboom menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	st, prev := openSettings()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, menuLevels(), prev)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		sel := *menuResult.Selection
		game, err := launch(sel)
		if err != nil {
			logger.Warn("could not start game", "game", sel.GameID, "error", err)
			continue
		}

		remember(st, sel)
		prev.Variant = sel.GameID
		prev.Difficulty = sel.Difficulty
		if sel.LevelID != "" {
			prev.LastLevel = sel.LevelID
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			return err
		}
	}
}
