package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		ProcessID: "P1",
		Clock:     0,
		Reason:    ReasonArrival,
		Remaining: 5,
		ReadyLen:  2,
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P1" {
		t.Errorf("expected process P1, got %s", st.Dispatches[0].ProcessID)
	}
	if st.Dispatches[0].Reason != ReasonArrival {
		t.Errorf("expected reason %q, got %q", ReasonArrival, st.Dispatches[0].Reason)
	}
}

func TestSimulationTrace_RecordPreemption_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a preemption record is recorded
	st.RecordPreemption(PreemptionRecord{Preempted: "P1", By: "P2", Clock: 1, Remaining: 7})

	// THEN the trace contains it
	if len(st.Preemptions) != 1 {
		t.Fatalf("expected 1 preemption, got %d", len(st.Preemptions))
	}
	if st.Preemptions[0].By != "P2" || st.Preemptions[0].Remaining != 7 {
		t.Errorf("unexpected record %+v", st.Preemptions[0])
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{ProcessID: "P1", Clock: 0, Reason: ReasonArrival})
	st.RecordExpiry(ExpiryRecord{ProcessID: "P1", Clock: 2, Remaining: 3})
	st.RecordDispatch(DispatchRecord{ProcessID: "P2", Clock: 2, Reason: ReasonQuantumExpiry})

	// THEN order is preserved per record type
	if len(st.Dispatches) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P1" || st.Dispatches[1].ProcessID != "P2" {
		t.Error("dispatch order not preserved")
	}
	if len(st.Expiries) != 1 || st.Expiries[0].Clock != 2 {
		t.Errorf("unexpected expiries %+v", st.Expiries)
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	tests := []struct {
		name string
		st   *SimulationTrace
		want bool
	}{
		{"nil trace", nil, false},
		{"none level", NewSimulationTrace(TraceConfig{Level: TraceLevelNone}), false},
		{"empty level", NewSimulationTrace(TraceConfig{}), false},
		{"decisions level", NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions}), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.st.Enabled(); got != tc.want {
				t.Errorf("Enabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true},
		{"detailed", false},
		{"invalid", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}
