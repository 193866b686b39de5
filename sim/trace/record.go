// Package trace provides decision-trace recording for scheduling policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchReason names the event that led to a dispatch decision.
type DispatchReason string

const (
	// ReasonArrival: the CPU was idle and a process arrived.
	ReasonArrival DispatchReason = "arrival"
	// ReasonCompletion: the previous process finished its burst.
	ReasonCompletion DispatchReason = "completion"
	// ReasonQuantumExpiry: the previous process used up its round-robin quantum.
	ReasonQuantumExpiry DispatchReason = "quantum-expiry"
	// ReasonPreemption: the dispatched process displaced the running one.
	ReasonPreemption DispatchReason = "preemption"
)

// DispatchRecord captures one process being given the CPU.
type DispatchRecord struct {
	ProcessID string
	Clock     int64
	Reason    DispatchReason
	Remaining int64 // burst still owed by the dispatched process
	ReadyLen  int   // processes left waiting after the dispatch
}

// PreemptionRecord captures a running process being displaced at an arrival instant.
type PreemptionRecord struct {
	Preempted string
	By        string
	Clock     int64
	Remaining int64 // burst still owed by the preempted process
}

// ExpiryRecord captures a round-robin quantum running out with burst left.
type ExpiryRecord struct {
	ProcessID string
	Clock     int64
	Remaining int64
}
