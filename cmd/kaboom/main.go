// kaboom is a terminal platformer: walk and jump Bomb Guy across a run of
// harbor levels to the exit door.
//
// Usage:
//
//	kaboom list               - List available variants
//	kaboom levels             - List the level catalogue
//	kaboom play [variant]     - Play a run
//	kaboom menu               - Pick variant, difficulty and level interactively
//	kaboom scores <variant>   - Show high scores for a variant
//	kaboom sim                - Run the simulation headless and print snapshots
//	kaboom config [variant]   - Print the default game config
//	kaboom serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed passed to games
//	--db <path>           - Set database path (default: ~/.kaboom/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels-dir <dir>    - Extra level files (.yaml, .tmx)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kaboom",
	Short: "Kaboom - a Bomb Guy platformer in your terminal",
	Long: `Kaboom is a side-view platformer for the terminal. Walk and jump
across the platforms of each level and reach the exit door; every door
cleared adds to your score and tokens.

Available commands:
  list     - Show the variants
  levels   - Show the level catalogue
  play     - Play a run directly
  menu     - Interactive variant and level picker
  scores   - View high scores
  sim      - Headless simulation with YAML snapshots
  config   - Print the default game config
  serve    - Start SSH server for remote play

Examples:
  kaboom play
  kaboom play kaboom-lite --difficulty hard
  kaboom menu
  kaboom sim --ticks 600 --hold right --every 60
  kaboom serve --ssh :2222`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kaboom/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of extra level files (.yaml, .tmx)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
