package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// saveScores records one bare run per score.
func saveScores(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, score := range scores {
		_, err := store.SaveRun(RunResult{GameID: gameID, Score: score})
		require.NoError(t, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file and parent dirs are created")
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	saveScores(t, store, "kaboom", 400)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("kaboom")
	require.NoError(t, err)
	assert.Equal(t, 400, high)
}

func TestSaveRun(t *testing.T) {
	store := openTestStore(t)

	e, err := store.SaveRun(RunResult{GameID: "kaboom", Score: 600, Tokens: 60, Level: 3, Victory: true})
	require.NoError(t, err)
	assert.NotZero(t, e.ID)
	_, err = uuid.Parse(e.RunID)
	assert.NoError(t, err, "run id is a uuid")

	got, err := store.RunByID(e.RunID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.RunID, got.RunID)
	assert.Equal(t, 600, got.Score)
	assert.Equal(t, 60, got.Tokens)
	assert.Equal(t, 3, got.Level)
	assert.True(t, got.Victory)
	assert.False(t, got.CreatedAt.IsZero())

	missing, err := store.RunByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveRunAssignsUniqueIDs(t *testing.T) {
	store := openTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		e, err := store.SaveRun(RunResult{GameID: "kaboom", Score: i})
		require.NoError(t, err)
		assert.False(t, seen[e.RunID])
		seen[e.RunID] = true
		assert.Equal(t, 1, e.Level, "level defaults to 1")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveScores(t, store, "kaboom", 100, 50, 200)
	saveScores(t, store, "kaboom-lite", 500)

	scores, err := store.TopScores("kaboom", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)

	lite, err := store.TopScores("kaboom-lite", 10)
	require.NoError(t, err)
	require.Len(t, lite, 1)
	assert.Equal(t, 500, lite[0].Score)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 20; i++ {
		saveScores(t, store, "kaboom", i*10)
	}

	scores, err := store.TopScores("kaboom", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 200, scores[0].Score)

	scores, err = store.TopScores("kaboom", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10, "non-positive limit means 10")

	all, err := store.AllScores("kaboom")
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("kaboom")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "no runs yet")

	saveScores(t, store, "kaboom", 100, 500, 200)
	saveScores(t, store, "kaboom-lite", 50)

	high, err = store.HighScore("kaboom")
	require.NoError(t, err)
	assert.Equal(t, 500, high)

	require.NoError(t, store.ClearScores("kaboom"))

	scores, err := store.TopScores("kaboom", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	lite, err := store.TopScores("kaboom-lite", 10)
	require.NoError(t, err)
	assert.Len(t, lite, 1, "other variants are untouched")
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("kaboom")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	runs := []RunResult{
		{GameID: "kaboom", Score: 200, Tokens: 20, Level: 2},
		{GameID: "kaboom", Score: 600, Tokens: 60, Level: 3, Victory: true},
		{GameID: "kaboom-lite", Score: 400, Tokens: 40, Level: 3},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("kaboom")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 600, stats.HighScore)
	assert.InDelta(t, 400.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(800), stats.TotalScore)
	assert.Equal(t, int64(80), stats.TotalTokens)
	assert.Equal(t, 3, stats.BestLevel)
	assert.Equal(t, 1, stats.Victories)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all["kaboom-lite"].GamesCount)
	assert.Equal(t, 0, all["kaboom-lite"].Victories)
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.kaboom/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".kaboom", "scores.db"))
	assert.NoError(t, err)
}
