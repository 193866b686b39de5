package sim

import "fmt"

// ExecutionSlice is one half-open interval [Start, End) of CPU occupancy.
// Idle slices carry an empty ProcessID.
type ExecutionSlice struct {
	ProcessID string `json:"processId"`
	Idle      bool   `json:"idle,omitempty"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
}

// Duration returns End - Start.
func (s ExecutionSlice) Duration() int64 {
	return s.End - s.Start
}

// Label returns the process id, or "idle" for idle slices.
func (s ExecutionSlice) Label() string {
	if s.Idle {
		return "idle"
	}
	return s.ProcessID
}

func (s ExecutionSlice) String() string {
	return fmt.Sprintf("%s:[%d,%d)", s.Label(), s.Start, s.End)
}

// sameOwner reports whether two slices belong to the same process (or are both idle).
func (s ExecutionSlice) sameOwner(o ExecutionSlice) bool {
	return s.Idle == o.Idle && s.ProcessID == o.ProcessID
}

// Coalesce merges adjacent slices of the same process whose boundaries touch.
// The input is not modified.
func Coalesce(raw []ExecutionSlice) []ExecutionSlice {
	out := make([]ExecutionSlice, 0, len(raw))
	for _, s := range raw {
		if n := len(out); n > 0 && out[n-1].sameOwner(s) && out[n-1].End == s.Start {
			out[n-1].End = s.End
			continue
		}
		out = append(out, s)
	}
	return out
}

// ValidateTimeline checks that slices are non-empty and contiguous:
// each slice starts exactly where the previous one ended.
func ValidateTimeline(slices []ExecutionSlice) error {
	for i, s := range slices {
		if s.End <= s.Start {
			return fmt.Errorf("slice %d (%s) is empty or inverted", i, s)
		}
		if s.Idle && s.ProcessID != "" {
			return fmt.Errorf("slice %d is idle but names process %q", i, s.ProcessID)
		}
		if i == 0 {
			continue
		}
		prev := slices[i-1]
		switch {
		case s.Start > prev.End:
			return fmt.Errorf("gap between slice %d (%s) and slice %d (%s)", i-1, prev, i, s)
		case s.Start < prev.End:
			return fmt.Errorf("overlap between slice %d (%s) and slice %d (%s)", i-1, prev, i, s)
		}
	}
	return nil
}
