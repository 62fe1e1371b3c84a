package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"llmhealth/internal/core"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() *core.ProbeStats {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &core.ProbeStats{
		TotalProbes:      3,
		SuccessfulProbes: 2,
		FailedProbes:     1,
		TotalElapsedTime: 620,
		LastProbeTime:    base.Add(2 * time.Minute),
		ProbeHistory: []core.ProbeRecord{
			{ID: "probe-a", Timestamp: base, Success: true, Elapsed: 210, Model: "gpt-4o"},
			{ID: "probe-b", Timestamp: base.Add(time.Minute), Success: false, Elapsed: 200, Model: "gpt-4o"},
			{ID: "probe-c", Timestamp: base.Add(2 * time.Minute), Success: true, Elapsed: 210, Model: "claude-3-opus"},
		},
	}
}

func assertStatsEqual(t *testing.T, expected, actual *core.ProbeStats) {
	t.Helper()
	assert.Equal(t, expected.TotalProbes, actual.TotalProbes)
	assert.Equal(t, expected.SuccessfulProbes, actual.SuccessfulProbes)
	assert.Equal(t, expected.FailedProbes, actual.FailedProbes)
	assert.Equal(t, expected.TotalElapsedTime, actual.TotalElapsedTime)
	assert.True(t, expected.LastProbeTime.Equal(actual.LastProbeTime))
	require.Len(t, actual.ProbeHistory, len(expected.ProbeHistory))
	for i := range expected.ProbeHistory {
		assert.Equal(t, expected.ProbeHistory[i].ID, actual.ProbeHistory[i].ID)
		assert.Equal(t, expected.ProbeHistory[i].Success, actual.ProbeHistory[i].Success)
		assert.Equal(t, expected.ProbeHistory[i].Model, actual.ProbeHistory[i].Model)
	}
}

func TestFileStorage_SaveAndLoad(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "history.json")
	fs := NewFileStorage(filePath)

	stats := sampleStats()
	require.NoError(t, fs.SaveStats(stats))

	loaded, err := fs.LoadStats()
	require.NoError(t, err)
	assertStatsEqual(t, stats, loaded)
	require.NoError(t, fs.Close())
}

func TestFileStorage_LoadMissingFile(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "does-not-exist.json"))

	loaded, err := fs.LoadStats()
	require.NoError(t, err)
	assert.Zero(t, loaded.TotalProbes)
	assert.NotNil(t, loaded.ProbeHistory)
	assert.Empty(t, loaded.ProbeHistory)
}

func TestFileStorage_LoadCorruptFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(filePath, []byte("not-json"), core.FilePermissionReadWrite))

	fs := NewFileStorage(filePath)
	_, err := fs.LoadStats()
	assert.Error(t, err)
}

func TestNewFileStorage_DefaultPath(t *testing.T) {
	fs := NewFileStorage("")
	assert.Equal(t, core.DefaultHistoryFile, fs.filePath)
}

func TestRedisStorage_SaveAndLoad(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rs, err := NewRedisStorage(RedisStorageConfig{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer func() { require.NoError(t, rs.Close()) }()

	stats := sampleStats()
	require.NoError(t, rs.SaveStats(stats))

	loaded, err := rs.LoadStats()
	require.NoError(t, err)
	assertStatsEqual(t, stats, loaded)
}

func TestRedisStorage_LoadEmptyKey(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rs, err := NewRedisStorage(RedisStorageConfig{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer func() { require.NoError(t, rs.Close()) }()

	loaded, err := rs.LoadStats()
	require.NoError(t, err)
	assert.Zero(t, loaded.TotalProbes)
	assert.NotNil(t, loaded.ProbeHistory)
	assert.Empty(t, loaded.ProbeHistory)
}

func TestNewRedisStorage_BadURL(t *testing.T) {
	_, err := NewRedisStorage(RedisStorageConfig{URL: "not-a-redis-url"})
	assert.Error(t, err)
}

func TestInitStorage_RedisSelected(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	t.Setenv("REDIS_URL", "redis://"+mr.Addr())
	t.Setenv("HEALTH_HISTORY_FILE", "")

	store := InitStorage(&core.NopLogger{})
	rs, ok := store.(*RedisStorage)
	require.True(t, ok, "expected Redis storage, got %T", store)
	require.NoError(t, rs.Close())
}

func TestInitStorage_FileSelected(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("HEALTH_HISTORY_FILE", filepath.Join(t.TempDir(), "history.json"))

	store := InitStorage(&core.NopLogger{})
	_, ok := store.(*FileStorage)
	assert.True(t, ok, "expected file storage, got %T", store)
}

func TestInitStorage_DefaultIsNop(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("HEALTH_HISTORY_FILE", "")

	store := InitStorage(&core.NopLogger{})
	_, ok := store.(*core.NopStorage)
	assert.True(t, ok, "expected no-op storage, got %T", store)
}

func TestInitStorage_RedisFailureFallsBackToFile(t *testing.T) {
	// Port 1 is never a Redis server; the dial fails immediately.
	t.Setenv("REDIS_URL", "redis://127.0.0.1:1")
	t.Setenv("HEALTH_HISTORY_FILE", filepath.Join(t.TempDir(), "history.json"))

	store := InitStorage(&core.NopLogger{})
	_, ok := store.(*FileStorage)
	assert.True(t, ok, "expected fallback to file storage, got %T", store)
}
