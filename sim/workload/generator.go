// Package workload generates seeded synthetic process sets for the simulator.
package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cpusched/schedsim/sim"
)

// GenerateProcesses draws spec.Count processes. The first arrives at
// spec.StartTime; each later one arrives one inter-arrival sample after its
// predecessor, so the result is ordered by arrival time.
func GenerateProcesses(spec *GeneratorSpec) ([]sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	iat, err := NewSampler(spec.InterArrival, 0)
	if err != nil {
		return nil, fmt.Errorf("inter_arrival: %w", err)
	}
	burst, err := NewSampler(spec.Burst, 1)
	if err != nil {
		return nil, fmt.Errorf("burst: %w", err)
	}
	var priority Sampler = &ConstantSampler{}
	if spec.Priority.Type != "" {
		if priority, err = NewSampler(spec.Priority, 0); err != nil {
			return nil, fmt.Errorf("priority: %w", err)
		}
	}
	prefix := spec.IDPrefix
	if prefix == "" {
		prefix = DefaultIDPrefix
	}

	rng := NewPartitionedRNG(spec.Seed)
	processes := make([]sim.Process, 0, spec.Count)
	clock := spec.StartTime
	for i := 0; i < spec.Count; i++ {
		if i > 0 {
			clock += iat.Sample(rng.ForStream(StreamArrival))
		}
		processes = append(processes, sim.Process{
			ID:          fmt.Sprintf("%s%d", prefix, i+1),
			ArrivalTime: clock,
			BurstTime:   burst.Sample(rng.ForStream(StreamBurst)),
			Priority:    priority.Sample(rng.ForStream(StreamPriority)),
		})
	}
	if err := sim.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	logrus.Debugf("generated %d processes with seed %d, last arrival at %d", len(processes), spec.Seed, clock)
	return processes, nil
}
