package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every dispatch, preemption and quantum expiry.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a simulation.
type SimulationTrace struct {
	Config      TraceConfig
	Dispatches  []DispatchRecord
	Preemptions []PreemptionRecord
	Expiries    []ExpiryRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Dispatches:  make([]DispatchRecord, 0),
		Preemptions: make([]PreemptionRecord, 0),
		Expiries:    make([]ExpiryRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelDecisions
}

// RecordDispatch appends a dispatch decision record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordPreemption appends a preemption record.
func (st *SimulationTrace) RecordPreemption(record PreemptionRecord) {
	st.Preemptions = append(st.Preemptions, record)
}

// RecordExpiry appends a quantum expiry record.
func (st *SimulationTrace) RecordExpiry(record ExpiryRecord) {
	st.Expiries = append(st.Expiries, record)
}
