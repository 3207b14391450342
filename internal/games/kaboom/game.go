// Package kaboom implements the kaboom platformer: a run across a catalogue
// of static levels, each driven by the simulation core in package sim.
// The player walks and jumps across platforms to the exit door; reaching it
// awards the level bonus and loads the next level.
package kaboom

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kaboom/internal/config"
	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
	"github.com/vovakirdan/kaboom/internal/levels"
	"github.com/vovakirdan/kaboom/internal/registry"
)

// Registry IDs of the two variants.
const (
	IDKaboom = "kaboom"
	IDLite   = "kaboom-lite"
)

// Game implements the kaboom run logic around a sim.World.
type Game struct {
	id     string
	title  string
	assets AssetSource

	opts       RunOptions
	runtime    core.RuntimeConfig
	cfg        config.KaboomConfig
	difficulty *config.DifficultyManager
	catalogue  *levels.Catalogue

	world    *sim.World
	level    levels.Level
	levelIdx int
	stats    sim.PlayerStats // carried from level to level

	prevInput core.InputState
	paused    bool
	gameOver  bool
	victory   bool
	tickCount int
}

// Settings set via CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       string
	levelDir         string
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel selects the level a run starts on, by ID.
func SetStartLevel(id string) {
	startLevel = id
}

// SetLevelDir adds a directory of user levels to the catalogue.
func SetLevelDir(dir string) {
	levelDir = dir
}

// RunOptions override the package-level settings for one game instance.
// Empty fields keep the package-level value.
type RunOptions struct {
	StartLevel string
	Difficulty string
}

// SetRunOptions sets per-instance overrides, applied on the next Reset.
func (g *Game) SetRunOptions(opts RunOptions) {
	g.opts = opts
}

// SetLogger sets the logger for skipped level files and config fallbacks.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates the sprite variant. If the embedded sprite sheet cannot be
// parsed the game draws placeholders.
func New() *Game {
	var assets AssetSource = Placeholders{}
	if sheet, err := DefaultSpriteSheet(); err == nil {
		assets = sheet
	}
	return NewWithAssets(IDKaboom, "Kaboom", assets)
}

// NewLite creates the variant that draws every actor as a colored block.
func NewLite() *Game {
	return NewWithAssets(IDLite, "Kaboom Lite", Placeholders{})
}

// NewWithAssets creates a game with an explicit asset source.
func NewWithAssets(id, title string, assets AssetSource) *Game {
	return &Game{id: id, title: title, assets: assets}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if _, ok := g.assets.(Placeholders); ok {
		return "Bomb Guy platformer, block graphics"
	}
	return "Bomb Guy platformer"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadKaboom(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "path", configPath, "error", err)
		}
		cfg = config.DefaultKaboomConfig()
	}

	// Apply difficulty preset if set
	preset := difficultyPreset
	if p, err := config.ParseDifficulty(g.opts.Difficulty); err == nil && g.opts.Difficulty != "" {
		preset = p
	}
	if preset != "" {
		config.ApplyKaboomPreset(&cfg, preset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if preset != "" {
		g.difficulty.ApplyPreset(preset)
	}
	g.catalogue = Catalogue()

	g.levelIdx = 0
	start := startLevel
	if g.opts.StartLevel != "" {
		start = g.opts.StartLevel
	}
	if i, ok := g.catalogue.Index(start); ok {
		g.levelIdx = i
	}

	g.stats = sim.PlayerStats{
		Health: cfg.Player.Health,
		Bombs:  cfg.Player.Bombs,
		Lives:  cfg.Player.Lives,
	}
	g.prevInput = core.InputState{}
	g.paused = false
	g.gameOver = false
	g.victory = false
	g.tickCount = 0

	g.loadLevel()
}

// Catalogue returns the builtin levels plus the user directory, if set.
// The builtin set is embedded and validated by tests; a single fallback
// level keeps the game playable should it ever fail.
func Catalogue() *levels.Catalogue {
	ld := levels.Loader{Logger: logger}
	c, err := ld.Builtin()
	if err != nil {
		c = levels.NewCatalogue(fallbackLevel())
	}
	if levelDir != "" {
		//nolint:errcheck // unreadable user dirs leave the builtin catalogue
		ld.LoadDir(c, os.DirFS(levelDir))
	}
	if c.Len() == 0 {
		c.Add(fallbackLevel())
	}
	return c
}

func fallbackLevel() levels.Level {
	door := core.NewAABB(960, 430, 64, 96)
	return levels.Level{
		ID:        "flat",
		Name:      "Flat",
		Platforms: []core.AABB{core.NewAABB(400, 400, 192, 32)},
		Door:      &door,
	}
}

// loadLevel builds the world for the current level index.
func (g *Game) loadLevel() {
	lvl, _ := g.catalogue.At(g.levelIdx)
	g.level = lvl

	wc, err := WorldConfig(g.cfg, lvl, g.difficulty, g.levelIdx, g.stats.Score)
	if err != nil {
		// Frame tables are validated with the config; fall back to the
		// defaults rather than refusing to start.
		wc, _ = WorldConfig(config.DefaultKaboomConfig(), lvl, g.difficulty, g.levelIdx, g.stats.Score)
	}
	wc.Player.Stats = g.stats
	g.world = sim.NewWorld(wc)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputState) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Pause toggles on the press edge so a held key does not flicker.
	if in.Pressed(core.ActionPause, g.prevInput) || in.Pressed(core.ActionMenu, g.prevInput) {
		g.paused = !g.paused
	}
	g.prevInput = in

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	ev := g.world.Step(in)
	g.stats = g.world.Player().Stats

	if ev.LevelComplete {
		g.completeLevel()
		return core.StepResult{State: g.State(), LevelComplete: true}
	}
	return core.StepResult{State: g.State()}
}

// completeLevel awards the level bonus and moves to the next level, or ends
// the run after the last one.
func (g *Game) completeLevel() {
	g.stats.Score += g.cfg.Scoring.LevelBonus
	g.stats.Tokens = g.stats.Score / g.cfg.Scoring.TokenDivisor
	g.world.Player().Stats = g.stats

	if g.levelIdx+1 >= g.catalogue.Len() {
		g.world.Stop()
		g.gameOver = true
		g.victory = true
		return
	}
	g.levelIdx++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		Tokens:   g.stats.Tokens,
		Level:    g.levelIdx + 1,
		GameOver: g.gameOver,
		Victory:  g.victory,
		Paused:   g.paused,
	}
}

// World returns the simulation of the current level.
func (g *Game) World() *sim.World {
	return g.world
}

// Level returns the current level.
func (g *Game) Level() levels.Level {
	return g.level
}

// Levels returns the catalogue the run plays through.
func (g *Game) Levels() *levels.Catalogue {
	return g.catalogue
}

// Register the variants with the registry
func init() {
	registry.Register(IDKaboom, func() registry.Game {
		return New()
	})
	registry.Register(IDLite, func() registry.Game {
		return NewLite()
	})
}
