package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
)

func fcfsResult(t *testing.T) *sim.SimulationResult {
	t.Helper()
	processes := []sim.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 5},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3},
		{ID: "P3", ArrivalTime: 2, BurstTime: 1},
	}
	result, err := sim.Run(processes, sim.SimulationConfig{Algorithm: sim.AlgorithmFCFS})
	require.NoError(t, err)
	return result
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	// GIVEN the FCFS result
	result := fcfsResult(t)

	// WHEN exported
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	// THEN the header and one row per process appear in input order
	want := "ID,Start Time,End Time,Waiting Time,Turnaround Time\n" +
		"P1,0,5,0,5\n" +
		"P2,5,8,4,7\n" +
		"P3,8,9,6,7\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyResult_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &sim.SimulationResult{}))
	assert.Equal(t, "ID,Start Time,End Time,Waiting Time,Turnaround Time\n", buf.String())
}

func TestWriteGantt_AlignsTicksUnderBoundaries(t *testing.T) {
	// GIVEN a timeline with an idle gap
	slices := []sim.ExecutionSlice{
		{ProcessID: "P1", Start: 0, End: 5},
		{ProcessID: "P2", Start: 5, End: 8},
		{Idle: true, Start: 8, End: 10},
		{ProcessID: "P3", Start: 10, End: 11},
	}

	// WHEN drawn
	var buf bytes.Buffer
	WriteGantt(&buf, slices)

	// THEN each tick sits under the bar that opens its slice
	want := "| P1 | P2 | idle | P3 |\n" +
		"0    5    8      10   11\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGantt_Empty_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWriteTable_ContainsRowsAndAverages(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, fcfsResult(t))

	out := buf.String()
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P3")
	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "6.33")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, fcfsResult(t))
	assert.Contains(t, buf.String(), "Makespan: 9")
	assert.Contains(t, buf.String(), "CPU utilization: 100.00%")
}

func TestWriteTraceSummary_SortedByProcess(t *testing.T) {
	summary := &trace.TraceSummary{
		TotalDispatches:      3,
		QuantumExpiries:      1,
		DispatchDistribution: map[string]int{"P2": 1, "P1": 2},
	}

	var buf bytes.Buffer
	WriteTraceSummary(&buf, summary)

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("P1")), bytes.Index(buf.Bytes(), []byte("P2")))
	assert.Contains(t, out, "Quantum expiries: 1")
}
