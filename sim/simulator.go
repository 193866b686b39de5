// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cpusched/schedsim/sim/trace"
)

// Simulator is the core object that holds simulation time, process state, and the event loop.
// A Simulator is built for exactly one run; it is not safe for concurrent use.
type Simulator struct {
	Clock int64
	// EventQueue has all pending events: arrivals, slice ends and dispatch decisions
	EventQueue *EventQueue
	// ReadyQ holds arrived processes that still owe CPU time and are not running
	ReadyQ *ReadyQueue
	Policy Policy
	// Running is the process holding the CPU, nil while idle
	Running *ProcessState
	// States mirrors the caller's process order
	States []*ProcessState
	// Slices is the raw timeline emitted so far
	Slices []ExecutionSlice
	// Trace collects decision records when enabled; nil disables tracing
	Trace *trace.SimulationTrace

	config          SimulationConfig
	sliceStart      int64 // start of the running slice
	accruedAt       int64 // Running.Remaining is exact as of this tick
	cursor          int64 // end of the last emitted slice
	pendingSliceEnd *SliceEndEvent
	dispatchPending bool
	cause           trace.DispatchReason
	completed       int
}

// NewSimulator validates its inputs and seeds one ArrivalEvent per process, in input order.
// The processes slice is copied; the caller's values are never modified.
func NewSimulator(processes []Process, cfg SimulationConfig) (*Simulator, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}

	own := make([]Process, len(processes))
	copy(own, processes)

	s := &Simulator{
		EventQueue: NewEventQueue(cfg.RequeueOrder),
		ReadyQ:     &ReadyQueue{},
		Policy:     NewPolicy(cfg),
		States:     make([]*ProcessState, len(own)),
		Slices:     make([]ExecutionSlice, 0, len(own)),
		config:     cfg,
	}
	for i := range own {
		ps := newProcessState(&own[i], i)
		s.States[i] = ps
		s.EventQueue.Schedule(&ArrivalEvent{time: ps.Process.ArrivalTime, State: ps})
	}
	if first := s.EventQueue.Peek(); first != nil {
		s.Clock = first.Timestamp()
		s.cursor = s.Clock
	}
	return s, nil
}

// Run drains the event queue and returns the raw timeline.
func (sim *Simulator) Run() []ExecutionSlice {
	logrus.Infof("[tick %07d] Starting %s with %d processes", sim.Clock, sim.Policy.Name(), len(sim.States))
	for sim.EventQueue.Len() > 0 {
		// get the next event to be simulated
		ev := sim.EventQueue.PopNext()
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Tracef("[tick %07d] Executing %T", sim.Clock, ev)
		// process the event
		ev.Execute(sim)
	}
	logrus.Infof("[tick %07d] Simulation ended, %d/%d processes completed, %d slices", sim.Clock, sim.completed, len(sim.States), len(sim.Slices))
	return sim.Slices
}

// Completed returns the number of processes that finished their burst.
func (sim *Simulator) Completed() int {
	return sim.completed
}

// enqueueReady adds an arrived or requeued process to the tail of the ready queue.
func (sim *Simulator) enqueueReady(ps *ProcessState) {
	ps.Status = StatusReady
	sim.ReadyQ.Enqueue(ps)
	if sim.cause == "" {
		sim.cause = trace.ReasonArrival
	}
}

// requestDispatch schedules the dispatch decision for instant t, once.
func (sim *Simulator) requestDispatch(t int64) {
	if sim.dispatchPending {
		return
	}
	sim.dispatchPending = true
	sim.EventQueue.Schedule(&DispatchEvent{time: t})
}

// accrue charges the running process for CPU time used up to t.
func (sim *Simulator) accrue(t int64) {
	if sim.Running == nil {
		return
	}
	sim.Running.Remaining -= t - sim.accruedAt
	sim.accruedAt = t
}

// emit appends a slice to the timeline, filling any gap since the last slice with idle time.
func (sim *Simulator) emit(ps *ProcessState, start, end int64) {
	if end <= start {
		return
	}
	if start > sim.cursor {
		sim.Slices = append(sim.Slices, ExecutionSlice{Idle: true, Start: sim.cursor, End: start})
		logrus.Debugf("[tick %07d] CPU idle for %d ticks", start, start-sim.cursor)
	}
	sim.Slices = append(sim.Slices, ExecutionSlice{ProcessID: ps.Process.ID, Start: start, End: end})
	sim.cursor = end
}

// endSlice closes the running slice at t. The process completes, or returns to
// the ready queue tail when its quantum expired with burst left.
func (sim *Simulator) endSlice(t int64) {
	ps := sim.Running
	sim.accrue(t)
	sim.emit(ps, sim.sliceStart, t)
	sim.Running = nil
	sim.pendingSliceEnd = nil

	if ps.Remaining == 0 {
		ps.Status = StatusCompleted
		sim.completed++
		sim.cause = trace.ReasonCompletion
		logrus.Debugf("[tick %07d] %s completed", t, ps.Process.ID)
		return
	}
	logrus.Debugf("[tick %07d] %s quantum expired, %d ticks left", t, ps.Process.ID, ps.Remaining)
	if sim.Trace.Enabled() {
		sim.Trace.RecordExpiry(trace.ExpiryRecord{ProcessID: ps.Process.ID, Clock: t, Remaining: ps.Remaining})
	}
	sim.enqueueReady(ps)
	sim.cause = trace.ReasonQuantumExpiry
}

// dispatch is the single decision point of an instant. With the CPU busy it
// only evaluates preemption; with the CPU free it starts the head of the
// policy-ordered ready queue.
func (sim *Simulator) dispatch(t int64) {
	defer func() { sim.cause = "" }()

	if sim.ReadyQ.Len() == 0 {
		return
	}
	sim.ReadyQ.Reorder(sim.Policy.OrderQueue)

	if sim.Running != nil {
		if !sim.Policy.Preemptive() {
			return
		}
		sim.accrue(t)
		if sim.Running.Remaining <= 0 {
			// its slice end at t is still pending
			return
		}
		if !sim.Policy.ShouldPreempt(sim.ReadyQ.Peek(), sim.Running) {
			return
		}
		sim.preempt(t, sim.ReadyQ.Peek())
		sim.ReadyQ.Reorder(sim.Policy.OrderQueue)
	}

	sim.start(t, sim.ReadyQ.Dequeue())
}

// preempt cuts the running slice at t and returns its process to the ready queue.
func (sim *Simulator) preempt(t int64, by *ProcessState) {
	ps := sim.Running
	sim.emit(ps, sim.sliceStart, t)
	sim.Running = nil
	// the SliceEndEvent already queued for ps becomes stale
	sim.pendingSliceEnd = nil
	ps.Status = StatusReady
	sim.ReadyQ.Enqueue(ps)
	sim.cause = trace.ReasonPreemption

	logrus.Debugf("[tick %07d] %s preempted by %s, %d ticks left", t, ps.Process.ID, by.Process.ID, ps.Remaining)
	if sim.Trace.Enabled() {
		sim.Trace.RecordPreemption(trace.PreemptionRecord{Preempted: ps.Process.ID, By: by.Process.ID, Clock: t, Remaining: ps.Remaining})
	}
}

// start gives the CPU to ps at t and schedules its slice end.
func (sim *Simulator) start(t int64, ps *ProcessState) {
	length := sim.Policy.SliceLength(ps)
	if length <= 0 {
		panic(fmt.Sprintf("start: policy %s returned slice length %d for %s", sim.Policy.Name(), length, ps.Process.ID))
	}
	ps.Status = StatusRunning
	if ps.FirstDispatch < 0 {
		ps.FirstDispatch = t
	}
	sim.Running = ps
	sim.sliceStart = t
	sim.accruedAt = t

	ev := &SliceEndEvent{time: t + length, State: ps}
	sim.pendingSliceEnd = ev
	sim.EventQueue.Schedule(ev)

	logrus.Debugf("[tick %07d] dispatch %s for up to %d ticks, ready=%s", t, ps.Process.ID, length, sim.ReadyQ)
	if sim.Trace.Enabled() {
		reason := sim.cause
		if reason == "" {
			reason = trace.ReasonArrival
		}
		sim.Trace.RecordDispatch(trace.DispatchRecord{
			ProcessID: ps.Process.ID,
			Clock:     t,
			Reason:    reason,
			Remaining: ps.Remaining,
			ReadyLen:  sim.ReadyQ.Len(),
		})
	}
}

// Simulate runs one policy over processes and returns the raw, uncoalesced timeline.
// It fails with ErrInvalidConfig or ErrInvalidProcessSet before any simulation work.
func Simulate(processes []Process, cfg SimulationConfig) ([]ExecutionSlice, error) {
	return simulate(processes, cfg, nil)
}

func simulate(processes []Process, cfg SimulationConfig, st *trace.SimulationTrace) ([]ExecutionSlice, error) {
	s, err := NewSimulator(processes, cfg)
	if err != nil {
		return nil, err
	}
	s.Trace = st
	slices := s.Run()
	if s.Completed() != len(s.States) {
		return nil, fmt.Errorf("%w: %d of %d processes completed", ErrIncompleteSchedule, s.Completed(), len(s.States))
	}
	return slices, nil
}
