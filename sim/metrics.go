// Derives per-process and aggregate scheduling metrics from a timeline:
// start, end, waiting, turnaround and response times, plus CPU utilization.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ProcessResult holds the metrics of one process. Field names follow the
// client result format: id, startTime, endTime, waitingTime, turnaroundTime.
type ProcessResult struct {
	ID             string `json:"id"`
	ArrivalTime    int64  `json:"arrivalTime"`
	BurstTime      int64  `json:"burstTime"`
	Priority       int64  `json:"priority"`
	StartTime      int64  `json:"startTime"`      // start of the first slice
	EndTime        int64  `json:"endTime"`        // end of the last slice
	WaitingTime    int64  `json:"waitingTime"`    // TurnaroundTime - BurstTime
	TurnaroundTime int64  `json:"turnaroundTime"` // EndTime - ArrivalTime
	ResponseTime   int64  `json:"responseTime"`   // StartTime - ArrivalTime
}

// SimulationResult aggregates statistics about one simulation for reporting.
type SimulationResult struct {
	Processes             []ProcessResult  `json:"processes"` // input order
	AverageWaitingTime    float64          `json:"averageWaitingTime"`
	AverageTurnaroundTime float64          `json:"averageTurnaroundTime"`
	AverageResponseTime   float64          `json:"averageResponseTime"`
	Makespan              int64            `json:"makespan"`        // end of the last slice
	IdleTime              int64            `json:"idleTime"`        // ticks with the CPU idle between first arrival and makespan
	CPUUtilization        float64          `json:"cpuUtilization"`  // busy ticks / elapsed ticks
	Throughput            float64          `json:"throughput"`      // processes per tick of elapsed time
	ContextSwitches       int              `json:"contextSwitches"` // process-to-process handovers in the coalesced timeline
	Gantt                 []ExecutionSlice `json:"gantt"`           // coalesced timeline
}

// ComputeMetrics derives a SimulationResult from processes and their timeline
// (raw or coalesced). It fails with ErrIncompleteSchedule when a process never
// runs or when its slices do not add up to its burst.
func ComputeMetrics(processes []Process, slices []ExecutionSlice) (*SimulationResult, error) {
	type span struct {
		first, last int64
		served      int64
		seen        bool
	}
	spans := make(map[string]*span, len(processes))
	for _, p := range processes {
		spans[p.ID] = &span{}
	}

	var busy, idle int64
	for _, s := range slices {
		if s.Idle {
			idle += s.Duration()
			continue
		}
		sp, ok := spans[s.ProcessID]
		if !ok {
			return nil, fmt.Errorf("%w: slice %s names an unknown process", ErrIncompleteSchedule, s)
		}
		if !sp.seen {
			sp.first = s.Start
			sp.seen = true
		}
		sp.last = s.End
		sp.served += s.Duration()
		busy += s.Duration()
	}

	result := &SimulationResult{
		Processes: make([]ProcessResult, 0, len(processes)),
		Gantt:     Coalesce(slices),
	}
	waits := make([]int64, 0, len(processes))
	turnarounds := make([]int64, 0, len(processes))
	responses := make([]int64, 0, len(processes))

	for _, p := range processes {
		sp := spans[p.ID]
		if !sp.seen {
			return nil, fmt.Errorf("%w: process %q was never scheduled", ErrIncompleteSchedule, p.ID)
		}
		if sp.served != p.BurstTime {
			return nil, fmt.Errorf("%w: process %q received %d ticks, burst is %d", ErrIncompleteSchedule, p.ID, sp.served, p.BurstTime)
		}
		pr := ProcessResult{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      sp.first,
			EndTime:        sp.last,
			TurnaroundTime: sp.last - p.ArrivalTime,
			ResponseTime:   sp.first - p.ArrivalTime,
		}
		pr.WaitingTime = pr.TurnaroundTime - pr.BurstTime
		if pr.WaitingTime < 0 || pr.ResponseTime < 0 {
			return nil, fmt.Errorf("%w: process %q ran before it arrived", ErrIncompleteSchedule, p.ID)
		}
		result.Processes = append(result.Processes, pr)
		waits = append(waits, pr.WaitingTime)
		turnarounds = append(turnarounds, pr.TurnaroundTime)
		responses = append(responses, pr.ResponseTime)
	}

	result.AverageWaitingTime = CalculateMean(waits)
	result.AverageTurnaroundTime = CalculateMean(turnarounds)
	result.AverageResponseTime = CalculateMean(responses)
	result.IdleTime = idle
	if n := len(slices); n > 0 {
		result.Makespan = slices[n-1].End
		elapsed := slices[n-1].End - slices[0].Start
		if elapsed > 0 {
			result.CPUUtilization = float64(busy) / float64(elapsed)
			result.Throughput = float64(len(processes)) / float64(elapsed)
		}
	}
	result.ContextSwitches = countContextSwitches(result.Gantt)

	logrus.Debugf("metrics: %d processes, avg wait %.2f, avg turnaround %.2f, makespan %d",
		len(result.Processes), result.AverageWaitingTime, result.AverageTurnaroundTime, result.Makespan)
	return result, nil
}

// countContextSwitches counts handovers between two different processes,
// looking through idle gaps.
func countContextSwitches(gantt []ExecutionSlice) int {
	switches := 0
	prev := ""
	for _, s := range gantt {
		if s.Idle {
			continue
		}
		if prev != "" && s.ProcessID != prev {
			switches++
		}
		prev = s.ProcessID
	}
	return switches
}
