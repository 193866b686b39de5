// Implements the ReadyQueue, which holds all arrived processes waiting for the CPU.
// Processes are enqueued on arrival and when a running slice ends with burst left.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO of processes that have arrived and still owe CPU time.
// Policies that select by key reorder it in place before each dispatch; round
// robin leaves the insertion order untouched.
type ReadyQueue struct {
	queue []*ProcessState
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(ps *ProcessState) {
	if ps == nil {
		panic("Enqueue: process state must not be nil")
	}
	rq.queue = append(rq.queue, ps)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, ps := range rq.queue {
		sb.WriteString(ps.Process.ID)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *ProcessState {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage: callers may iterate over
// it but MUST NOT append to or reslice it. For reordering, use Reorder().
func (rq *ReadyQueue) Items() []*ProcessState {
	return rq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// Policy.OrderQueue is the primary consumer.
// fn MUST NOT change the slice length (no append/delete).
func (rq *ReadyQueue) Reorder(fn func([]*ProcessState)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *ProcessState {
	if len(rq.queue) == 0 {
		return nil
	}
	ps := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return ps
}
