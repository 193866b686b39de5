// Defines the Process input type and the per-run ProcessState tracked by the engine.
// Tracks arrival time, burst accounting, and first-dispatch time.

package sim

import (
	"fmt"
)

// Process is a unit of CPU demand supplied by the caller. It is never mutated
// by the engine; all run-time bookkeeping lives on ProcessState.
type Process struct {
	ID          string `json:"id" yaml:"id"`                     // Unique, non-empty identifier
	ArrivalTime int64  `json:"arrivalTime" yaml:"arrival_time"` // Tick at which the process becomes ready
	BurstTime   int64  `json:"burstTime" yaml:"burst_time"`     // Total CPU ticks required
	Priority    int64  `json:"priority" yaml:"priority"`        // Lower value = more urgent; read only by the Priority policy
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, Arrival: %d, Burst: %d, Priority: %d)", p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// ProcessStatus represents the lifecycle state of a process within one run.
type ProcessStatus string

const (
	StatusPending   ProcessStatus = "pending" // not yet arrived
	StatusReady     ProcessStatus = "ready"
	StatusRunning   ProcessStatus = "running"
	StatusCompleted ProcessStatus = "completed"
)

// ProcessState is the engine's mutable view of a Process during a single Simulate call.
type ProcessState struct {
	Process   *Process
	Seq       int   // Position in the caller's input; the final tie-breaker for every policy
	Remaining int64 // CPU ticks still owed
	Status    ProcessStatus
	// FirstDispatch is the tick of the first slice, -1 until dispatched.
	FirstDispatch int64
}

func newProcessState(p *Process, seq int) *ProcessState {
	return &ProcessState{
		Process:       p,
		Seq:           seq,
		Remaining:     p.BurstTime,
		Status:        StatusPending,
		FirstDispatch: -1,
	}
}

func (ps ProcessState) String() string {
	return fmt.Sprintf("ProcessState: (ID: %s, Status: %s, Remaining: %d)", ps.Process.ID, ps.Status, ps.Remaining)
}

// ValidateProcesses checks the domain invariants of a process set: non-empty unique ids,
// BurstTime > 0 and ArrivalTime >= 0. The first violation is returned wrapped in
// ErrInvalidProcessSet.
func ValidateProcesses(processes []Process) error {
	seen := make(map[string]int, len(processes))
	for i, p := range processes {
		if p.ID == "" {
			return fmt.Errorf("%w: process at index %d has an empty id", ErrInvalidProcessSet, i)
		}
		if j, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate process id %q at indexes %d and %d", ErrInvalidProcessSet, p.ID, j, i)
		}
		seen[p.ID] = i
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %q burst time must be positive, got %d", ErrInvalidProcessSet, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %q arrival time must be non-negative, got %d", ErrInvalidProcessSet, p.ID, p.ArrivalTime)
		}
	}
	return nil
}
