package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFCFSPolicy_OrdersByArrivalThenInput(t *testing.T) {
	// GIVEN ready processes out of arrival order, two arriving together
	policy := &FCFSPolicy{}
	ready := readyStates(procs("c:3:1", "a:1:9", "b2:2:1", "b1:2:5"))

	// WHEN ordered
	policy.OrderQueue(ready)

	// THEN earliest arrival is first and the tie keeps input position
	assert.Equal(t, []string{"a", "b2", "b1", "c"}, stateIDs(ready))
	assert.False(t, policy.Preemptive())
}

func TestSJFPolicy_OrdersByRemainingThenArrival(t *testing.T) {
	// GIVEN processes with differing remaining bursts
	policy := &SJFPolicy{}
	ready := readyStates(procs("long:0:9", "short-late:4:2", "short-early:1:2", "mid:2:5"))

	// WHEN ordered
	policy.OrderQueue(ready)

	// THEN shortest remaining first, equal bursts broken by arrival
	assert.Equal(t, []string{"short-early", "short-late", "mid", "long"}, stateIDs(ready))
}

func TestSJFPolicy_UsesRemainingNotBurst(t *testing.T) {
	// GIVEN a long job that has mostly run
	policy := &SJFPolicy{Preempt: true}
	ready := readyStates(procs("P1:0:10", "P2:1:4"))
	ready[0].Remaining = 1

	// WHEN ordered
	policy.OrderQueue(ready)

	// THEN the partially run job wins on remaining time
	assert.Equal(t, []string{"P1", "P2"}, stateIDs(ready))
}

func TestSJFPolicy_ShouldPreempt_StrictlyShorterOnly(t *testing.T) {
	policy := &SJFPolicy{Preempt: true}
	states := readyStates(procs("run:0:8", "same:1:4", "short:1:3"))
	states[0].Remaining = 4

	assert.True(t, policy.Preemptive())
	assert.False(t, policy.ShouldPreempt(states[1], states[0]), "equal remaining must not preempt")
	assert.True(t, policy.ShouldPreempt(states[2], states[0]))
}

func TestSJFPolicy_Name(t *testing.T) {
	assert.Equal(t, "Shortest Job First", (&SJFPolicy{}).Name())
	assert.Equal(t, "Shortest Remaining Time First", (&SJFPolicy{Preempt: true}).Name())
}

func TestRoundRobinPolicy_KeepsFIFOOrder(t *testing.T) {
	// GIVEN a ready queue in enqueue order
	policy := &RoundRobinPolicy{Quantum: 2}
	ready := readyStates(procs("c:3:1", "a:0:9", "b:1:1"))

	// WHEN ordered
	policy.OrderQueue(ready)

	// THEN order is unchanged
	assert.Equal(t, []string{"c", "a", "b"}, stateIDs(ready))
	assert.False(t, policy.Preemptive())
}

func TestRoundRobinPolicy_SliceLengthCappedByRemaining(t *testing.T) {
	policy := &RoundRobinPolicy{Quantum: 3}
	states := readyStates(procs("big:0:10", "small:0:2"))

	assert.Equal(t, int64(3), policy.SliceLength(states[0]))
	assert.Equal(t, int64(2), policy.SliceLength(states[1]))
}

func TestNewPolicy_ReturnsPolicyPerAlgorithm(t *testing.T) {
	tests := []struct {
		cfg  SimulationConfig
		want string
	}{
		{SimulationConfig{Algorithm: AlgorithmFCFS}, "First Come First Serve"},
		{SimulationConfig{Algorithm: AlgorithmSJF}, "Shortest Job First"},
		{SimulationConfig{Algorithm: AlgorithmSJF, Preemptive: true}, "Shortest Remaining Time First"},
		{SimulationConfig{Algorithm: AlgorithmPriority}, "Priority"},
		{SimulationConfig{Algorithm: AlgorithmPriority, Preemptive: true}, "Priority (preemptive)"},
		{SimulationConfig{Algorithm: AlgorithmRoundRobin, TimeQuantum: 4}, "Round Robin (q=4)"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPolicy(tc.cfg).Name())
		})
	}
}

func TestNewPolicy_UnknownAlgorithm_Panics(t *testing.T) {
	assert.Panics(t, func() { NewPolicy(SimulationConfig{Algorithm: "lottery"}) })
	assert.Panics(t, func() { NewPolicy(SimulationConfig{Algorithm: AlgorithmRoundRobin}) })
}
