package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/kaboom/internal/config"
	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/games/kaboom"
	"github.com/vovakirdan/kaboom/internal/logging"
	"github.com/vovakirdan/kaboom/internal/platform/tui"
	"github.com/vovakirdan/kaboom/internal/registry"
	"github.com/vovakirdan/kaboom/internal/settings"
	"github.com/vovakirdan/kaboom/internal/storage"
)

var logger *log.Logger

// setup validates the global flags and hands them to the game package.
func setup() error {
	l, err := logging.New("kaboom", flagLogLevel)
	if err != nil {
		return err
	}
	logger = l

	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadKaboom(flagConfig); err != nil {
			return err
		}
	}
	if flagLevelsDir != "" {
		if fi, err := os.Stat(flagLevelsDir); err != nil || !fi.IsDir() {
			return fmt.Errorf("levels dir %q is not a directory", flagLevelsDir)
		}
	}

	kaboom.SetLogger(logger)
	kaboom.SetConfigPath(flagConfig)
	kaboom.SetDifficultyPreset(flagDifficulty)
	kaboom.SetLevelDir(flagLevelsDir)
	return nil
}

// runtimeConfig sizes the run to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSettings opens the remembered menu choices. Play continues without them.
func openSettings() (*settings.Store, settings.Settings) {
	st, err := settings.Open(settings.AppName)
	if err != nil {
		logger.Warn("could not open settings", "error", err)
		return nil, settings.Defaults()
	}
	prev, err := st.Load()
	if err != nil {
		logger.Warn("could not load settings", "error", err)
	}
	return st, prev
}

// menuLevels lists the catalogue for the menu.
func menuLevels() []tui.MenuLevel {
	lvls := kaboom.Catalogue().Levels()
	out := make([]tui.MenuLevel, len(lvls))
	for i, l := range lvls {
		out[i] = tui.MenuLevel{ID: l.ID, Name: l.Name}
	}
	return out
}

// launch creates the selected variant with the chosen level and difficulty.
func launch(sel tui.MenuSelection) (registry.Game, error) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, err
	}
	if g, ok := game.(*kaboom.Game); ok {
		g.SetRunOptions(kaboom.RunOptions{StartLevel: sel.LevelID, Difficulty: sel.Difficulty})
	}
	return game, nil
}
