package store

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/schedsim/sim"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	st, err := NewSQLiteStore(":memory:", logrus.NewEntry(logger))
	require.NoError(t, err, "open store")
	require.NoError(t, st.Migrate(context.Background()), "migrate")
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRun(t *testing.T) *Run {
	t.Helper()
	processes := []sim.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 5},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3},
	}
	cfg := sim.SimulationConfig{Algorithm: sim.AlgorithmRoundRobin, TimeQuantum: 2}
	result, err := sim.Run(processes, cfg)
	require.NoError(t, err)
	return &Run{
		Algorithm:   string(cfg.Algorithm),
		TimeQuantum: cfg.TimeQuantum,
		Processes:   processes,
		Result:      result,
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	st := testStore(t)
	// Migrate a second time; should not error.
	assert.NoError(t, st.Migrate(context.Background()))
}

func TestSaveAndGetRun(t *testing.T) {
	// GIVEN a saved round-robin run
	st := testStore(t)
	ctx := context.Background()
	run := sampleRun(t)
	require.NoError(t, st.SaveRun(ctx, run))

	// THEN an id and timestamp were assigned
	assert.True(t, strings.HasPrefix(run.ID, "run_"), "id %q", run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	// WHEN fetched back
	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// THEN inputs and result round-trip
	assert.Equal(t, run.Processes, got.Processes)
	assert.Equal(t, run.Result.Gantt, got.Result.Gantt)
	assert.Equal(t, run.Result.AverageWaitingTime, got.Result.AverageWaitingTime)
	assert.Equal(t, sim.SimulationConfig{Algorithm: sim.AlgorithmRoundRobin, TimeQuantum: 2}, got.Config())
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestGetRun_NotFound(t *testing.T) {
	st := testStore(t)
	got, err := st.GetRun(context.Background(), "run_nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveRun_DuplicateID(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	run := sampleRun(t)
	require.NoError(t, st.SaveRun(ctx, run))

	dup := sampleRun(t)
	dup.ID = run.ID
	assert.Error(t, st.SaveRun(ctx, dup))
}

func TestListRuns_Empty(t *testing.T) {
	st := testStore(t)
	runs, err := st.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestListRuns_NewestFirstWithLimit(t *testing.T) {
	// GIVEN three runs created a second apart
	st := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"run_a", "run_b", "run_c"} {
		run := sampleRun(t)
		run.ID = id
		run.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, st.SaveRun(ctx, run))
	}

	// WHEN listed with limit 2
	runs, err := st.ListRuns(ctx, 2)
	require.NoError(t, err)

	// THEN the two newest come back, newest first
	require.Len(t, runs, 2)
	assert.Equal(t, "run_c", runs[0].ID)
	assert.Equal(t, "run_b", runs[1].ID)
}
