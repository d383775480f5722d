package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveGame(core.Summary{GameID: "tetra150", Score: 300, Lines: 150, Cleared: true})
	require.NoError(t, err)
	_, err = store.SaveGame(core.Summary{GameID: "tetra150", Score: 100, Lines: 42})
	require.NoError(t, err)

	stats, err := store.GetGameStats("tetra150")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(400), stats.TotalScore)
	assert.Equal(t, 1, stats.Cleared)
	assert.Equal(t, 150, stats.MaxLines)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Contains(t, all, "tetra150")
	assert.Equal(t, 2, all["tetra150"].GamesCount)
}

func TestStoreGameStatsNeverPlayed(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetra999")
	require.NoError(t, err)
	assert.Equal(t, &GameStats{GameID: "tetra999"}, stats)
}

func TestStoreAllGamesStatsBareScores(t *testing.T) {
	store := openTestStore(t)

	// modes without statistics only write the score table
	_, err := store.SaveScore("plain", 70)
	require.NoError(t, err)
	_, err = store.SaveGame(core.Summary{GameID: "tetra150", Score: 10, Lines: 3})
	require.NoError(t, err)

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 70, all["plain"].HighScore)
	assert.Zero(t, all["plain"].MaxLines)
	assert.Equal(t, 3, all["tetra150"].MaxLines)
}
