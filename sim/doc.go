// Package sim provides the discrete-event CPU scheduling engine for schedsim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process input type and the runtime ProcessState the engine mutates
//   - event.go: Event types that drive the simulation (Arrival, SliceEnd, Dispatch)
//   - simulator.go: The event loop, dispatch and preemption
//
// # Pipeline
//
// A simulation is three pure stages composed by Run:
//   - Simulate: runs the configured Policy and emits the raw slice stream
//   - Coalesce: merges adjacent slices of the same process
//   - ComputeMetrics: derives per-process start/end/waiting/turnaround and averages
//
// Each call owns its own state; independent calls may run concurrently.
//
// # Key Interfaces
//
//   - Policy: order the ready queue, decide preemption, and size the next slice
//
// Sub-packages:
//   - sim/trace/: Decision trace recording (dispatches, preemptions)
//   - sim/workload/: Seeded synthetic process sets
package sim
