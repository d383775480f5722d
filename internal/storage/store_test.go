package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetra/scores.db")
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(home, ".tetra", "scores.db"))
}

func TestStoreMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	_, err = store.SaveGame(core.Summary{GameID: "tetra150", Score: 5})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// reopening runs nothing and keeps the data
	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	high, err := store.HighScore("tetra150")
	require.NoError(t, err)
	assert.Equal(t, 5, high)
}

func TestStoreMigratesScoreOnlyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("tetra150", 900)
	require.NoError(t, err)
	// pretend only the first migration ran
	_, err = store.db.Exec("DROP TABLE game_records; PRAGMA user_version = 1")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveGame(core.Summary{GameID: "tetra150", Score: 100})
	require.NoError(t, err)
	stats, err := store.GetGameStats("tetra150")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 900, stats.HighScore)
}
