package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kaboom/internal/storage"
)

func TestScoreboardShowsRuns(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.RunResult{GameID: "kaboom", Score: 600, Tokens: 60, Level: 3, Victory: true})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.RunResult{GameID: "kaboom", Score: 200, Tokens: 20, Level: 2})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()

	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "Kaboom")
	assert.Contains(t, view, "600")
	assert.Contains(t, view, "cleared")
	assert.Contains(t, view, "Runs 2")
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	view := m.View()
	assert.Contains(t, view, "Kaboom Lite")
	assert.Contains(t, view, "No runs recorded yet")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, _ := m.Update(runeKey("b"))
	assert.True(t, next.(ScoreboardModel).IsGoingBack())

	next, _ = m.Update(runeKey("q"))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}
