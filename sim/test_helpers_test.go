package sim

import "strings"

// procs builds processes from "id:arrival:burst[:priority]" specs.
func procs(specs ...string) []Process {
	out := make([]Process, 0, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ":")
		p := Process{ID: parts[0], ArrivalTime: atoi(parts[1]), BurstTime: atoi(parts[2])}
		if len(parts) > 3 {
			p.Priority = atoi(parts[3])
		}
		out = append(out, p)
	}
	return out
}

func atoi(s string) int64 {
	var n int64
	neg := strings.HasPrefix(s, "-")
	for _, c := range strings.TrimPrefix(s, "-") {
		n = n*10 + int64(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

// ganttStrings renders a timeline as "P1:[0,5)" tokens.
func ganttStrings(slices []ExecutionSlice) []string {
	out := make([]string, len(slices))
	for i, s := range slices {
		out[i] = s.String()
	}
	return out
}

func stateIDs(states []*ProcessState) []string {
	ids := make([]string, len(states))
	for i, ps := range states {
		ids[i] = ps.Process.ID
	}
	return ids
}

// readyStates builds ProcessStates in input order with Remaining set from the burst.
func readyStates(ps []Process) []*ProcessState {
	out := make([]*ProcessState, len(ps))
	for i := range ps {
		out[i] = newProcessState(&ps[i], i)
	}
	return out
}

func resultByID(r *SimulationResult, id string) ProcessResult {
	for _, pr := range r.Processes {
		if pr.ID == id {
			return pr
		}
	}
	return ProcessResult{}
}
