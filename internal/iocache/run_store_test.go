package iocache

import (
	"testing"
	"time"

	"github.com/huangsam/sdrfbench/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	runID, err := store.BeginRun(time.Now(), map[string]any{"threshold": 0.8})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.EndRun(runID, time.Now(), 0.5, 1, 0))
	assert.NoError(t, store.RecordPair(runID, schema.PairScore{Group: "PXD001819", Column: "organism"}))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	runs, err := store.ExportRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	assert.NoError(t, store.Close())
}

func TestRunStore_SQLite(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	startTime := time.Now()
	configParams := map[string]any{
		"group_key": "PXD",
		"threshold": 0.8,
		"solution":  "/data/Solution.csv",
	}
	runID, err := store.BeginRun(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	pairs := []schema.PairScore{
		{Group: "PXD001819", Column: "organism", Precision: 1, Recall: 1, F1: 1},
		{Group: "PXD001819", Column: "instrument", Precision: 0.5, Recall: 1, F1: 2.0 / 3.0},
		{Group: "PXD004684", Column: "organism part", Excluded: true},
	}
	for _, pair := range pairs {
		require.NoError(t, store.RecordPair(runID, pair))
	}

	err = store.EndRun(runID, startTime.Add(5*time.Second), 5.0/6.0, 2, 1)
	assert.NoError(t, err)
}

func TestRunStore_SQLiteStatus(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	startTime := time.Now()
	runID, err := store.BeginRun(startTime, nil)
	require.NoError(t, err)
	require.NoError(t, store.EndRun(runID, startTime.Add(time.Second), 0.75, 4, 0))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.WithinDuration(t, startTime, status.LastRun, time.Second)
	assert.InDelta(t, 0.75, status.LastScore, 0.001)
}

func TestRunStore_ExportRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	startTime := time.Now()

	// First run completes, second run stays open
	firstID, err := store.BeginRun(startTime, map[string]any{"threshold": 0.8})
	require.NoError(t, err)
	require.NoError(t, store.EndRun(firstID, startTime.Add(time.Second), 0.9, 3, 1))

	secondID, err := store.BeginRun(startTime.Add(time.Minute), nil)
	require.NoError(t, err)

	runs, err := store.ExportRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, secondID, runs[0].RunID)
	assert.Equal(t, firstID, runs[1].RunID)

	assert.Nil(t, runs[0].EndTime, "Open run should have no end time")
	assert.Nil(t, runs[0].Score, "Open run should have no score")

	require.NotNil(t, runs[1].EndTime)
	assert.WithinDuration(t, startTime.Add(time.Second), *runs[1].EndTime, time.Second)
	require.NotNil(t, runs[1].Score)
	assert.InDelta(t, 0.9, *runs[1].Score, 0.001)
	assert.Equal(t, 3, runs[1].ScoredPairs)
	assert.Equal(t, 1, runs[1].ExcludedPairs)
	assert.Contains(t, runs[1].ConfigParams, `"threshold":0.8`)
}

func TestRunStore_ExportPairs(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)

	require.NoError(t, store.RecordPair(runID, schema.PairScore{
		Group: "PXD004684", Column: "organism", Precision: 1, Recall: 0.5, F1: 2.0 / 3.0,
	}))
	require.NoError(t, store.RecordPair(runID, schema.PairScore{
		Group: "PXD001819", Column: "instrument", Excluded: true,
	}))

	pairs, err := store.ExportPairs(runID)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// Ordered by group, then column
	assert.Equal(t, "PXD001819", pairs[0].Group)
	assert.Equal(t, "instrument", pairs[0].Column)
	assert.True(t, pairs[0].Excluded)

	assert.Equal(t, "PXD004684", pairs[1].Group)
	assert.Equal(t, "organism", pairs[1].Column)
	assert.InDelta(t, 2.0/3.0, pairs[1].F1, 0.001)

	// Unknown run has no pairs
	pairs, err = store.ExportPairs(runID + 100)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestRunStore_MultipleRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	startTime := time.Now()
	var ids []int64
	for i := range 3 {
		runID, err := store.BeginRun(startTime.Add(time.Duration(i)*time.Minute), nil)
		require.NoError(t, err)
		ids = append(ids, runID)
	}

	// IDs are strictly increasing
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalRuns)
}
