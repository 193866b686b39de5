package sim

import (
	"github.com/cpusched/schedsim/sim/trace"
)

// Run is the full pipeline: Simulate, Coalesce, ComputeMetrics.
func Run(processes []Process, cfg SimulationConfig) (*SimulationResult, error) {
	result, _, err := RunWithTrace(processes, cfg, trace.TraceConfig{Level: trace.TraceLevelNone})
	return result, err
}

// RunWithTrace is Run with decision tracing. The returned trace is nil when
// tc.Level is none or empty.
func RunWithTrace(processes []Process, cfg SimulationConfig, tc trace.TraceConfig) (*SimulationResult, *trace.SimulationTrace, error) {
	var st *trace.SimulationTrace
	if tc.Level == trace.TraceLevelDecisions {
		st = trace.NewSimulationTrace(tc)
	}
	raw, err := simulate(processes, cfg, st)
	if err != nil {
		return nil, nil, err
	}
	result, err := ComputeMetrics(processes, Coalesce(raw))
	if err != nil {
		return nil, nil, err
	}
	return result, st, nil
}
