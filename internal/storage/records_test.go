package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func TestStoreSaveGameRoundTrip(t *testing.T) {
	store := openTestStore(t)

	sum := core.Summary{
		GameID:  "tetra150",
		Score:   12450,
		Level:   7,
		Extreme: true,
		Lines:   150,
		Frames:  36000,
		Cleared: true,
		Stats:   map[string]int{"tetrises": 20, "max_ren": 5},
	}
	id, err := store.SaveGame(sum)
	require.NoError(t, err)
	require.Len(t, id, 36, "record IDs are uuids")

	rec, err := store.RecordByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, sum.GameID, rec.GameID)
	assert.Equal(t, sum.Score, rec.Score)
	assert.Equal(t, sum.Level, rec.Level)
	assert.True(t, rec.Extreme)
	assert.Equal(t, sum.Lines, rec.Lines)
	assert.Equal(t, sum.Frames, rec.Frames)
	assert.True(t, rec.Cleared)
	assert.Equal(t, sum.Stats, rec.Stats)

	// SaveGame also feeds the high score table
	high, err := store.HighScore("tetra150")
	require.NoError(t, err)
	assert.Equal(t, 12450, high)
}

func TestStoreRecordByIDMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.RecordByID("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStoreRecentRecords(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := range 5 {
		id, err := store.SaveGame(core.Summary{GameID: "tetra999", Score: i * 100})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := store.SaveGame(core.Summary{GameID: "tetra150", Score: 1})
	require.NoError(t, err)

	records, err := store.RecentRecords("tetra999", 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ids[4], records[0].ID, "newest first")
	assert.Equal(t, ids[3], records[1].ID)
	assert.Equal(t, ids[2], records[2].ID)
	assert.Empty(t, records[0].Stats)

	top, err := store.TopRecords("tetra999", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 400, top[0].Score)
	assert.Equal(t, 300, top[1].Score)
}

func TestStoreRecordTotals(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveGame(core.Summary{GameID: "tetra150", Stats: map[string]int{"tetrises": 3, "hard_drops": 40}})
	require.NoError(t, err)
	_, err = store.SaveGame(core.Summary{GameID: "tetra150", Stats: map[string]int{"tetrises": 2, "tspin_double": 1}})
	require.NoError(t, err)
	_, err = store.SaveGame(core.Summary{GameID: "tetra999", Stats: map[string]int{"tetrises": 100}})
	require.NoError(t, err)

	totals, err := store.RecordTotals("tetra150")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"tetrises": 5, "hard_drops": 40, "tspin_double": 1}, totals)
}

func TestStoreSaveGameNilStats(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveGame(core.Summary{GameID: "tetra150", Score: 0})
	require.NoError(t, err)

	rec, err := store.RecordByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Empty(t, rec.Stats)
	assert.False(t, rec.CreatedAt.IsZero())
}
