package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
	assert.NoError(t, store.Close())
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveResult(Result{MaxTile: 512, Moves: 300, Lost: true})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	results, err := store.RecentResults(10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 512, results[0].MaxTile)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	inputs := []Result{
		{MaxTile: 256, Moves: 180, Lost: true, Seed: 1},
		{MaxTile: 2048, Moves: 950, Won: true, Seed: 2},
		{MaxTile: 256, Moves: 150, Lost: true, Seed: 3},
		{MaxTile: 64, Moves: 40, Seed: 4},
	}
	var ids []int64
	for _, r := range inputs {
		id, err := store.SaveResult(r)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.Less(t, ids[0], ids[1])

	recent, err := store.RecentResults(10)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	assert.Equal(t, int64(4), recent[0].Seed, "newest first")
	assert.Equal(t, int64(1), recent[3].Seed)
	assert.False(t, recent[0].CreatedAt.IsZero())

	best, err := store.BestResults(3)
	require.NoError(t, err)
	require.Len(t, best, 3)
	assert.Equal(t, 2048, best[0].MaxTile)
	assert.True(t, best[0].Won)
	assert.Equal(t, 150, best[1].Moves, "ties break on fewer moves")
	assert.Equal(t, 180, best[2].Moves)
}

func TestStoreDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 12 {
		_, err := store.SaveResult(Result{MaxTile: 2 << i, Moves: i})
		require.NoError(t, err)
	}

	recent, err := store.RecentResults(0)
	require.NoError(t, err)
	assert.Len(t, recent, 10)

	best, err := store.BestResults(-1)
	require.NoError(t, err)
	assert.Len(t, best, 10)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Games)
	assert.True(t, stats.LastPlayed.IsZero())

	for _, r := range []Result{
		{MaxTile: 2048, Moves: 100, Won: true},
		{MaxTile: 512, Moves: 60, Lost: true},
		{MaxTile: 128, Moves: 20},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Games)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 2048, stats.BestTile)
	assert.Equal(t, int64(180), stats.TotalMoves)
	assert.InDelta(t, 60.0, stats.AvgMoves, 0.001)
	assert.WithinDuration(t, time.Now().UTC(), stats.LastPlayed, 24*time.Hour)
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{MaxTile: 8, Moves: 3})
	require.NoError(t, err)
	require.NoError(t, store.ClearResults())

	recent, err := store.RecentResults(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestResultOutcome(t *testing.T) {
	assert.Equal(t, "won", Result{Won: true}.Outcome())
	assert.Equal(t, "lost", Result{Lost: true}.Outcome())
	assert.Equal(t, "abandoned", Result{}.Outcome())
}

func TestParseTime(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, now, parseTime(now))
	assert.Equal(t, now, parseTime("2026-10-18 12:30:00"))
	assert.True(t, parseTime("garbage").IsZero())
	assert.True(t, parseTime(nil).IsZero())
}
