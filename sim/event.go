package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// EventType identifies the kind of an event for same-instant ordering.
type EventType string

const (
	EventTypeArrival  EventType = "Arrival"
	EventTypeSliceEnd EventType = "SliceEnd"
	EventTypeDispatch EventType = "Dispatch"
)

// arrivalsFirstPriority orders simultaneous events so that every arrival and
// every slice end of an instant is applied before the one dispatch decision.
var arrivalsFirstPriority = map[EventType]int{
	EventTypeArrival:  1,
	EventTypeSliceEnd: 2,
	EventTypeDispatch: 3,
}

// requeueFirstPriority lets an expiring round-robin slice requeue its process
// ahead of processes arriving at the same instant.
var requeueFirstPriority = map[EventType]int{
	EventTypeSliceEnd: 1,
	EventTypeArrival:  2,
	EventTypeDispatch: 3,
}

// eventTypePriority returns the same-instant ordering table for a requeue order.
func eventTypePriority(order RequeueOrder) map[EventType]int {
	if order == RequeueRunningFirst {
		return requeueFirstPriority
	}
	return arrivalsFirstPriority
}

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in ticks) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Type() EventType
	Execute(*Simulator)
}

// ArrivalEvent represents a process becoming ready.
type ArrivalEvent struct {
	time  int64         // Simulation time of arrival (in ticks)
	State *ProcessState // The arriving process
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() int64 { return e.time }

// Type returns EventTypeArrival.
func (e *ArrivalEvent) Type() EventType { return EventTypeArrival }

// Execute moves the process to the ready queue and requests a dispatch decision.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: %s at %d ticks", e.State.Process.ID, e.time)
	sim.enqueueReady(e.State)
	sim.requestDispatch(e.time)
}

// SliceEndEvent marks the planned end of the running slice: the process either
// completes or, under round robin, exhausts its quantum.
type SliceEndEvent struct {
	time  int64
	State *ProcessState
}

// Timestamp returns the scheduled time of the SliceEndEvent.
func (e *SliceEndEvent) Timestamp() int64 { return e.time }

// Type returns EventTypeSliceEnd.
func (e *SliceEndEvent) Type() EventType { return EventTypeSliceEnd }

// Execute closes the running slice unless it was already cut short by a preemption.
func (e *SliceEndEvent) Execute(sim *Simulator) {
	if sim.pendingSliceEnd != e {
		logrus.Debugf("<< SliceEnd: %s at %d ticks (stale, ignored)", e.State.Process.ID, e.time)
		return
	}
	logrus.Debugf("<< SliceEnd: %s at %d ticks", e.State.Process.ID, e.time)
	sim.endSlice(e.time)
	sim.requestDispatch(e.time)
}

// DispatchEvent runs the policy once all state changes of its instant are applied.
type DispatchEvent struct {
	time int64
}

// Timestamp returns the scheduled time of the DispatchEvent.
func (e *DispatchEvent) Timestamp() int64 { return e.time }

// Type returns EventTypeDispatch.
func (e *DispatchEvent) Type() EventType { return EventTypeDispatch }

// Execute runs a dispatch decision.
func (e *DispatchEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Dispatch at %d ticks", e.time)
	sim.dispatchPending = false
	sim.dispatch(e.time)
}

// queuedEvent pairs an event with its insertion sequence number.
type queuedEvent struct {
	Event
	seq uint64
}

// EventQueue implements a priority queue with deterministic ordering.
// Ordering: timestamp → type priority → insertion sequence.
type EventQueue struct {
	events       []queuedEvent
	typePriority map[EventType]int
	nextSeq      uint64
}

// NewEventQueue creates an empty queue using the same-instant ordering of order.
func NewEventQueue(order RequeueOrder) *EventQueue {
	q := &EventQueue{
		events:       make([]queuedEvent, 0),
		typePriority: eventTypePriority(order),
	}
	heap.Init(q)
	return q
}

// Len implements heap.Interface
func (q *EventQueue) Len() int { return len(q.events) }

// Less implements heap.Interface with deterministic ordering
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]

	// Primary: timestamp (lower first)
	if ei.Timestamp() != ej.Timestamp() {
		return ei.Timestamp() < ej.Timestamp()
	}

	// Secondary: type priority (lower value = processed first)
	priI, priJ := q.typePriority[ei.Type()], q.typePriority[ej.Type()]
	if priI != priJ {
		return priI < priJ
	}

	// Tertiary: insertion order
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (q *EventQueue) Swap(i, j int) { q.events[i], q.events[j] = q.events[j], q.events[i] }

// Push implements heap.Interface
func (q *EventQueue) Push(x any) { q.events = append(q.events, x.(queuedEvent)) }

// Pop implements heap.Interface
func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue.
func (q *EventQueue) Schedule(e Event) {
	heap.Push(q, queuedEvent{Event: e, seq: q.nextSeq})
	q.nextSeq++
}

// PopNext removes and returns the next event, or nil when the queue is empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(queuedEvent).Event
}

// Peek returns the next event without removing it.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0].Event
}
