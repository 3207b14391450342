package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kaboom/internal/games/kaboom"
	"github.com/vovakirdan/kaboom/internal/platform/tui"
	"github.com/vovakirdan/kaboom/internal/registry"
	"github.com/vovakirdan/kaboom/internal/settings"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a run",
	Long: `Start a run of the given variant (default: the last one played).
Without --level the run starts on the last level played.

Controls:
  A/Left, D/Right  - Walk
  W/Up/Space       - Jump
  E/X              - Place a bomb
  P/Esc            - Pause
  B                - Back (when paused or after the run)
  R                - Restart (after the run)
  Ctrl+S           - Save a screenshot to ~/.kaboom/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives and health, lighter gravity
  normal - The default config
  hard   - One life, heavier gravity, faster enemies
  fixed  - No enemy speed-up from level to level

Examples:
  kaboom play
  kaboom play kaboom-lite
  kaboom play --difficulty hard --level deck
  kaboom play --config ./my-kaboom.yaml --levels-dir ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to start on (see 'kaboom levels')")
}

func runPlay(cmd *cobra.Command, args []string) error {
	st, prev := openSettings()

	sel := selection(args, prev)
	if !registry.Exists(sel.GameID) {
		return fmt.Errorf("unknown variant %q (run 'kaboom list')", sel.GameID)
	}
	if sel.LevelID != "" && !hasLevel(sel.LevelID) {
		return fmt.Errorf("unknown level %q (run 'kaboom levels')", sel.LevelID)
	}

	game, err := launch(sel)
	if err != nil {
		return err
	}

	remember(st, sel)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, logger, runtimeConfig())
}

// selection resolves the run to start: arguments and flags first, then the
// remembered variant, difficulty and level. A remembered level that left the
// catalogue is ignored.
func selection(args []string, prev settings.Settings) tui.MenuSelection {
	sel := tui.MenuSelection{
		GameID:     prev.Variant,
		LevelID:    flagLevel,
		Difficulty: flagDifficulty,
	}
	if len(args) == 1 {
		sel.GameID = args[0]
	}
	if sel.Difficulty == "" {
		sel.Difficulty = prev.Difficulty
	}
	if sel.LevelID == "" && prev.LastLevel != "" && hasLevel(prev.LastLevel) {
		sel.LevelID = prev.LastLevel
	}
	return sel
}

// hasLevel reports whether the current catalogue has the level.
func hasLevel(id string) bool {
	_, ok := kaboom.Catalogue().Get(id)
	return ok
}

// remember stores the selection as the next default.
func remember(st *settings.Store, sel tui.MenuSelection) {
	err := st.Update(func(s *settings.Settings) {
		s.Variant = sel.GameID
		s.Difficulty = sel.Difficulty
		if sel.LevelID != "" {
			s.LastLevel = sel.LevelID
		}
	})
	if err != nil {
		logger.Warn("could not save settings", "error", err)
	}
}
