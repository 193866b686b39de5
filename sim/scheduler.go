package sim

import (
	"fmt"
	"sort"
)

// Policy decides which ready process runs next and for how long.
// Implementations sort the ready slice in-place using sort.SliceStable for determinism;
// the engine then dispatches the head of the queue.
type Policy interface {
	// Name returns the display name used in logs and reports.
	Name() string
	// OrderQueue reorders the ready processes so the next to run is first.
	OrderQueue(ready []*ProcessState)
	// Preemptive reports whether a newly arrived process may displace the running one.
	Preemptive() bool
	// ShouldPreempt reports whether candidate must displace running right now.
	// Only consulted when Preemptive is true and running still owes CPU time.
	ShouldPreempt(candidate, running *ProcessState) bool
	// SliceLength returns how long a just-dispatched process may run before the
	// engine revisits the decision (absent preemption).
	SliceLength(ps *ProcessState) int64
}

// arrivalLess orders by arrival time, then by input position.
func arrivalLess(a, b *ProcessState) bool {
	if a.Process.ArrivalTime != b.Process.ArrivalTime {
		return a.Process.ArrivalTime < b.Process.ArrivalTime
	}
	return a.Seq < b.Seq
}

// FCFSPolicy runs processes in arrival order, each to completion.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Name() string { return "First Come First Serve" }

// OrderQueue sorts by arrival time (ascending), then by input position.
func (f *FCFSPolicy) OrderQueue(ready []*ProcessState) {
	sort.SliceStable(ready, func(i, j int) bool {
		return arrivalLess(ready[i], ready[j])
	})
}

func (f *FCFSPolicy) Preemptive() bool                     { return false }
func (f *FCFSPolicy) ShouldPreempt(_, _ *ProcessState) bool { return false }
func (f *FCFSPolicy) SliceLength(ps *ProcessState) int64    { return ps.Remaining }

// SJFPolicy selects the process with the least remaining burst, then earliest
// arrival, then input position. With Preempt set it behaves as
// shortest-remaining-time-first.
// Warning: SJF can starve long processes under sustained short arrivals.
type SJFPolicy struct {
	Preempt bool
}

func (s *SJFPolicy) Name() string {
	if s.Preempt {
		return "Shortest Remaining Time First"
	}
	return "Shortest Job First"
}

func (s *SJFPolicy) OrderQueue(ready []*ProcessState) {
	sort.SliceStable(ready, func(i, j int) bool {
		if ready[i].Remaining != ready[j].Remaining {
			return ready[i].Remaining < ready[j].Remaining
		}
		return arrivalLess(ready[i], ready[j])
	})
}

func (s *SJFPolicy) Preemptive() bool { return s.Preempt }

// ShouldPreempt requires a strictly shorter remaining burst; the running process keeps the CPU on ties.
func (s *SJFPolicy) ShouldPreempt(candidate, running *ProcessState) bool {
	return candidate.Remaining < running.Remaining
}

func (s *SJFPolicy) SliceLength(ps *ProcessState) int64 { return ps.Remaining }

// RoundRobinPolicy gives each ready process at most Quantum ticks in FIFO order.
type RoundRobinPolicy struct {
	Quantum int64
}

func (r *RoundRobinPolicy) Name() string { return fmt.Sprintf("Round Robin (q=%d)", r.Quantum) }

func (r *RoundRobinPolicy) OrderQueue(_ []*ProcessState) {
	// No-op: FIFO order preserved from enqueue order
}

// Preemptive is false: round robin only preempts on quantum expiry, never on arrival.
func (r *RoundRobinPolicy) Preemptive() bool                     { return false }
func (r *RoundRobinPolicy) ShouldPreempt(_, _ *ProcessState) bool { return false }

func (r *RoundRobinPolicy) SliceLength(ps *ProcessState) int64 {
	return min(r.Quantum, ps.Remaining)
}

// NewPolicy creates the Policy for a validated configuration.
// Panics on an algorithm Validate would have rejected.
func NewPolicy(cfg SimulationConfig) Policy {
	switch cfg.Algorithm {
	case AlgorithmFCFS:
		return &FCFSPolicy{}
	case AlgorithmSJF:
		return &SJFPolicy{Preempt: cfg.Preemptive}
	case AlgorithmPriority:
		return &PriorityPolicy{Preempt: cfg.Preemptive}
	case AlgorithmRoundRobin:
		if cfg.TimeQuantum <= 0 {
			panic(fmt.Sprintf("NewPolicy: round robin quantum must be positive, got %d", cfg.TimeQuantum))
		}
		return &RoundRobinPolicy{Quantum: cfg.TimeQuantum}
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", cfg.Algorithm))
	}
}
