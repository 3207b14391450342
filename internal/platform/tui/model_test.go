package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/registry"
	"github.com/vovakirdan/kaboom/internal/storage"
)

// scriptedGame ends the run after endAfter steps with a fixed score.
type scriptedGame struct {
	endAfter int
	score    int
	steps    int
	resets   int
	inputs   []core.InputState
	paused   bool
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.inputs = nil
}

func (g *scriptedGame) Step(in core.InputState) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	over := g.steps >= g.endAfter
	s := core.GameState{Level: 1, Paused: g.paused, GameOver: over}
	if over {
		s.Score = g.score
		s.Tokens = g.score / 10
	}
	return s
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store) (Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(5000, 0)}
	m := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.clock = clock.Now
	m.Init()
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// tick builds a tick message for the model's own loop.
func (m Model) tick(t time.Time) TickMsg {
	return TickMsg{Time: t, Loop: m.loop}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelFeedsHeldInputToStep(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, clock := newTestModel(t, g, nil)

	m, _ = update(t, m, runeKey("d"))
	clock.now = clock.now.Add(16 * time.Millisecond)
	m, cmd := update(t, m, m.tick(clock.now))
	assert.NotNil(t, cmd)

	require.Len(t, g.inputs, 1)
	assert.True(t, g.inputs[0].Held(core.ActionMoveRight))

	clock.now = clock.now.Add(200 * time.Millisecond)
	_, _ = update(t, m, m.tick(clock.now))
	require.Len(t, g.inputs, 2)
	assert.False(t, g.inputs[1].Held(core.ActionMoveRight))
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openTestStore(t)
	g := &scriptedGame{endAfter: 2, score: 250}
	m, _ := newTestModel(t, g, store)

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, m.tick(time.Now()))
	}

	require.NotNil(t, m.LastRun())
	assert.Equal(t, 250, m.LastRun().Score)
	assert.Equal(t, 25, m.LastRun().Tokens)

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestModelShowsSavedRun(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.RunResult{GameID: "scripted", Score: 100})
	require.NoError(t, err)

	g := &scriptedGame{endAfter: 1, score: 250}
	m, _ := newTestModel(t, g, store)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 5})
	assert.NotContains(t, m.View(), "saved", "nothing to show while the run is live")

	m, _ = update(t, m, m.tick(time.Now()))
	require.NotNil(t, m.LastRun())
	assert.True(t, m.NewBest())
	assert.Contains(t, m.View(), "run "+m.LastRun().RunID+" saved, new best")

	got, err := store.RunByID(m.LastRun().RunID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 250, got.Score)
}

func TestModelSavedRunBelowBest(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.RunResult{GameID: "scripted", Score: 900})
	require.NoError(t, err)

	g := &scriptedGame{endAfter: 1, score: 250}
	m, _ := newTestModel(t, g, store)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 5})
	m, _ = update(t, m, m.tick(time.Now()))

	require.NotNil(t, m.LastRun())
	assert.False(t, m.NewBest())
	assert.Contains(t, m.View(), "saved")
	assert.NotContains(t, m.View(), "new best")

	m, _ = update(t, m, runeKey("r"))
	assert.NotContains(t, m.View(), "saved", "restart clears the line")
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	g := &scriptedGame{endAfter: 1}
	m, _ := newTestModel(t, g, store)

	m, _ = update(t, m, m.tick(time.Now()))
	assert.True(t, m.State().GameOver)
	assert.Nil(t, m.LastRun())

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAfter: 1, score: 10}
	m, _ := newTestModel(t, g, nil)

	// Restart is ignored while the run is live.
	m, _ = update(t, m, runeKey("r"))
	assert.Equal(t, 1, g.resets)

	m, _ = update(t, m, m.tick(time.Now()))
	require.True(t, m.State().GameOver)

	m, _ = update(t, m, runeKey("r"))
	assert.Equal(t, 2, g.resets)
	assert.False(t, m.State().GameOver)
	assert.Nil(t, m.LastRun())
}

func TestModelBackToMenu(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := newTestModel(t, g, nil)

	m, _ = update(t, m, runeKey("b"))
	assert.False(t, m.BackToMenu(), "back only works when paused or over")

	g.paused = true
	m, _ = update(t, m, m.tick(time.Now()))
	m, cmd := update(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd)

	// No more ticks once the model is leaving.
	_, cmd = update(t, m, m.tick(time.Now()))
	assert.Nil(t, cmd)
}

func TestModelEscPausesBeforeBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdirT(t, t.TempDir())

	game, err := registry.Create("kaboom-lite")
	require.NoError(t, err)
	clock := &fakeClock{now: time.Unix(5000, 0)}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.clock = clock.Now
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, m.tick(clock.now))
	assert.True(t, m.State().Paused, "esc pauses the run")
	assert.False(t, m.BackToMenu(), "esc never leaves a run directly")

	m, _ = update(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := newTestModel(t, g, nil)

	m, cmd := update(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := newTestModel(t, g, nil)

	_, cmd := update(t, m, TickMsg{Time: time.Now(), Loop: m.loop + 1000})
	assert.Nil(t, cmd)
	assert.Zero(t, g.steps)
}

func TestModelView(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := newTestModel(t, g, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 3})
	assert.Contains(t, m.View(), "scripted")
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	g := &scriptedGame{endAfter: 100}
	m, _ := newTestModel(t, g, nil)
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(home, ".kaboom", "screenshots", "scripted_*.txt"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
