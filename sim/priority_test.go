package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityPolicy_LowerNumberFirst(t *testing.T) {
	// GIVEN processes with mixed priorities
	policy := &PriorityPolicy{}
	ready := readyStates(procs("low:0:1:5", "high:3:1:1", "mid:1:1:3"))

	// WHEN ordered
	policy.OrderQueue(ready)

	// THEN the smallest priority number runs first
	assert.Equal(t, []string{"high", "mid", "low"}, stateIDs(ready))
}

func TestPriorityPolicy_TiesBrokenByArrivalThenInput(t *testing.T) {
	// GIVEN equal priorities
	policy := &PriorityPolicy{}
	ready := readyStates(procs("late:5:1:2", "early-b:1:1:2", "early-a:1:1:2"))

	// WHEN ordered
	policy.OrderQueue(ready)

	// THEN earlier arrival first, then input position
	assert.Equal(t, []string{"early-b", "early-a", "late"}, stateIDs(ready))
}

func TestPriorityPolicy_NegativePrioritiesAllowed(t *testing.T) {
	policy := &PriorityPolicy{}
	ready := readyStates(procs("zero:0:1:0", "neg:0:1:-4"))

	policy.OrderQueue(ready)

	assert.Equal(t, []string{"neg", "zero"}, stateIDs(ready))
}

func TestPriorityPolicy_ShouldPreempt_StrictlyMoreUrgentOnly(t *testing.T) {
	policy := &PriorityPolicy{Preempt: true}
	states := readyStates(procs("run:0:5:2", "equal:1:1:2", "urgent:1:1:1"))

	assert.True(t, policy.Preemptive())
	assert.False(t, policy.ShouldPreempt(states[1], states[0]))
	assert.True(t, policy.ShouldPreempt(states[2], states[0]))
	assert.False(t, (&PriorityPolicy{}).Preemptive())
}
