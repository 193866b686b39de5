package sim

import "sort"

// PriorityPolicy selects the process with the lowest priority number (most
// urgent), then earliest arrival, then input position. Priorities are static
// for the whole run; there is no aging.
type PriorityPolicy struct {
	Preempt bool
}

func (p *PriorityPolicy) Name() string {
	if p.Preempt {
		return "Priority (preemptive)"
	}
	return "Priority"
}

func (p *PriorityPolicy) OrderQueue(ready []*ProcessState) {
	sort.SliceStable(ready, func(i, j int) bool {
		if ready[i].Process.Priority != ready[j].Process.Priority {
			return ready[i].Process.Priority < ready[j].Process.Priority
		}
		return arrivalLess(ready[i], ready[j])
	})
}

func (p *PriorityPolicy) Preemptive() bool { return p.Preempt }

// ShouldPreempt requires a strictly lower priority number than the running process.
func (p *PriorityPolicy) ShouldPreempt(candidate, running *ProcessState) bool {
	return candidate.Process.Priority < running.Process.Priority
}

func (p *PriorityPolicy) SliceLength(ps *ProcessState) int64 { return ps.Remaining }
