package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/registry"
	"github.com/vovakirdan/kaboom/internal/settings"
	"github.com/vovakirdan/kaboom/internal/storage"
)

// Launcher creates the game for a menu selection.
type Launcher func(sel MenuSelection) (registry.Game, error)

// registryLauncher creates the selected variant with no overrides.
func registryLauncher(sel MenuSelection) (registry.Game, error) {
	return registry.Create(sel.GameID)
}

// SessionOptions are shared by every session a server runs.
type SessionOptions struct {
	Store  *storage.Store
	Logger *log.Logger
	Levels []MenuLevel
	Launch Launcher
}

type sessionMode int

const (
	sessionMenu sessionMode = iota
	sessionGame
	sessionScores
)

// SessionModel manages the full session flow: menu -> game -> menu,
// with the scoreboard reachable from the menu.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	username   string
	prev       settings.Settings
	mode       sessionMode
	menu       MenuModel
	gameModel  *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig, username string) SessionModel {
	if opts.Launch == nil {
		opts.Launch = registryLauncher
	}
	prev := settings.Defaults()

	return SessionModel{
		opts:     opts,
		config:   cfg,
		username: username,
		prev:     prev,
		menu:     NewMenuModel(cfg, opts.Levels, prev),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case sessionGame:
		return m.updateGame(msg)
	case sessionScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.mode = sessionScores
		return m, sb.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		game, err := m.opts.Launch(*sel)
		if err != nil {
			if m.opts.Logger != nil {
				m.opts.Logger.Warn("could not start game", "user", m.username, "game", sel.GameID, "error", err)
			}
			return m.backToMenu()
		}

		m.prev = settings.Settings{Variant: sel.GameID, Difficulty: sel.Difficulty, LastLevel: sel.LevelID}
		if m.opts.Logger != nil {
			m.opts.Logger.Info("game started", "user", m.username, "game", sel.GameID, "level", sel.LevelID)
		}

		gm := NewModel(game, m.opts.Store, m.opts.Logger, m.config)
		m.gameModel = &gm
		m.mode = sessionGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.mode = sessionMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.config, m.opts.Levels, m.prev)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case sessionGame:
		return m.gameModel.View()
	case sessionScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
