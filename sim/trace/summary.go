package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int                    `json:"totalDispatches"`
	Preemptions          int                    `json:"preemptions"`
	QuantumExpiries      int                    `json:"quantumExpiries"`
	UniqueProcesses      int                    `json:"uniqueProcesses"`
	DispatchDistribution map[string]int         `json:"dispatchDistribution"` // process ID → number of times dispatched
	ReasonDistribution   map[DispatchReason]int `json:"reasonDistribution"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDistribution: make(map[string]int),
		ReasonDistribution:   make(map[DispatchReason]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.DispatchDistribution[d.ProcessID]++
		summary.ReasonDistribution[d.Reason]++
	}
	summary.Preemptions = len(st.Preemptions)
	summary.QuantumExpiries = len(st.Expiries)
	summary.UniqueProcesses = len(summary.DispatchDistribution)

	return summary
}
