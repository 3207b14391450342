package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/registry"
	"github.com/vovakirdan/kaboom/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	hold      *HoldTracker
	clock     func() time.Time
	loop      uint64
	gameState core.GameState

	quitting   bool
	backToMenu bool
	exitOnBack bool // standalone play has no menu to return to
	scoreSaved bool // run saved for the current game over
	lastRun    *storage.ScoreEntry
	newBest    bool // lastRun beat every earlier run of the variant
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(DefaultHoldWindow),
		clock:     time.Now,
		loop:      nextLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	m.hold.KeyDown(action, m.clock())
	return m, nil
}

// restart begins a new run of the same game.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.lastRun = nil
	m.newBest = false
	m.hold.ReleaseAll()
}

// handleTick reads the input state once and advances the game one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	in := m.hold.Tick(m.clock())
	result := m.game.Step(in)
	m.gameState = result.State

	if result.LevelComplete && m.logger != nil {
		m.logger.Debug("level complete", "game", m.game.ID(), "level", m.gameState.Level, "score", m.gameState.Score)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun stores the finished run once. Runs without points are not kept.
func (m *Model) saveRun() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	best, err := m.store.HighScore(m.game.ID())
	if err != nil && m.logger != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
	}

	entry, err := m.store.SaveRun(storage.RunResult{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Tokens:  m.gameState.Tokens,
		Level:   m.gameState.Level,
		Victory: m.gameState.Victory,
	})
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		}
		return
	}
	m.lastRun = &entry
	m.newBest = m.gameState.Score > best
}

// runLine describes the saved run, for the bottom row after a game over.
func (m Model) runLine() string {
	if m.lastRun == nil {
		return ""
	}
	line := "run " + m.lastRun.RunID + " saved"
	if m.newBest {
		line += ", new best"
	}
	return line
}

// saveScreenshot saves the current screen to ~/.kaboom/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".kaboom", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.logger != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if line := m.runLine(); line != "" {
		m.screen.DrawTextColored(0, m.screen.Height()-1, line, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRun returns the stored run after a game over, or nil.
func (m Model) LastRun() *storage.ScoreEntry {
	return m.lastRun
}

// NewBest reports whether the stored run is the variant's best so far.
func (m Model) NewBest() bool {
	return m.newBest
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
