package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/schedsim/sim/trace"
)

func TestRunWithTrace_LevelNone_ReturnsNilTrace(t *testing.T) {
	result, st, err := RunWithTrace(procs("P1:0:2"), SimulationConfig{Algorithm: AlgorithmFCFS}, trace.TraceConfig{Level: trace.TraceLevelNone})
	require.NoError(t, err)

	assert.NotNil(t, result)
	assert.Nil(t, st)
}

func TestRunWithTrace_SRTF_RecordsPreemption(t *testing.T) {
	// GIVEN the classic SRTF workload with tracing on
	processes := procs("P1:0:8", "P2:1:4", "P3:2:9", "P4:3:5")

	// WHEN run
	_, st, err := RunWithTrace(processes, SimulationConfig{Algorithm: AlgorithmSJF, Preemptive: true}, trace.TraceConfig{Level: trace.TraceLevelDecisions})
	require.NoError(t, err)
	require.NotNil(t, st)

	// THEN one preemption of P1 by P2 at tick 1 is recorded
	require.Len(t, st.Preemptions, 1)
	assert.Equal(t, trace.PreemptionRecord{Preempted: "P1", By: "P2", Clock: 1, Remaining: 7}, st.Preemptions[0])

	// AND each dispatch carries the reason that triggered it
	reasons := make([]trace.DispatchReason, len(st.Dispatches))
	ids := make([]string, len(st.Dispatches))
	for i, d := range st.Dispatches {
		reasons[i] = d.Reason
		ids[i] = d.ProcessID
	}
	assert.Equal(t, []string{"P1", "P2", "P4", "P1", "P3"}, ids)
	assert.Equal(t, []trace.DispatchReason{
		trace.ReasonArrival, trace.ReasonPreemption, trace.ReasonCompletion, trace.ReasonCompletion, trace.ReasonCompletion,
	}, reasons)
}

func TestRunWithTrace_RoundRobin_RecordsExpiries(t *testing.T) {
	processes := procs("P1:0:5", "P2:1:3", "P3:2:1")

	_, st, err := RunWithTrace(processes, SimulationConfig{Algorithm: AlgorithmRoundRobin, TimeQuantum: 2}, trace.TraceConfig{Level: trace.TraceLevelDecisions})
	require.NoError(t, err)

	// P1 expires at 2 and 7, P2 at 4
	summary := trace.Summarize(st)
	assert.Equal(t, 3, summary.QuantumExpiries)
	assert.Equal(t, 6, summary.TotalDispatches)
	assert.Equal(t, 3, summary.DispatchDistribution["P1"])
	assert.Equal(t, 0, summary.Preemptions)
}

func TestRun_InvalidConfig_NoResult(t *testing.T) {
	result, err := Run(procs("P1:0:1"), SimulationConfig{Algorithm: AlgorithmRoundRobin})
	assert.Error(t, err)
	assert.Nil(t, result)
}
