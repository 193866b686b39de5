// Package store persists simulation runs so they can be listed and replayed later.
package store

import (
	"context"
	"time"

	"github.com/cpusched/schedsim/sim"
)

// Run is one recorded simulation: the inputs it ran with and the result it produced.
type Run struct {
	ID           string                `json:"id"`
	Algorithm    string                `json:"algorithm"`
	Preemptive   bool                  `json:"preemptive"`
	TimeQuantum  int64                 `json:"timeQuantum,omitempty"`
	RequeueOrder string                `json:"requeueOrder,omitempty"`
	Processes    []sim.Process         `json:"processes"`
	Result       *sim.SimulationResult `json:"result"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// Config returns the SimulationConfig the run was executed with.
func (r *Run) Config() sim.SimulationConfig {
	return sim.SimulationConfig{
		Algorithm:    sim.Algorithm(r.Algorithm),
		Preemptive:   r.Preemptive,
		TimeQuantum:  r.TimeQuantum,
		RequeueOrder: sim.RequeueOrder(r.RequeueOrder),
	}
}

// Store defines the persistence layer for simulation runs.
type Store interface {
	// SaveRun assigns an ID and creation time when unset, then inserts the run.
	SaveRun(ctx context.Context, run *Run) error
	// GetRun returns nil, nil when no run has the given id.
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns at most limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	Close() error
	Migrate(ctx context.Context) error
}
