package sim

import (
	"fmt"
	"strings"
)

// Algorithm names a scheduling discipline. The canonical tokens match the
// request format used by clients: "FCFS", "SJF", "Priority", "RR".
type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "FCFS"
	AlgorithmSJF        Algorithm = "SJF"
	AlgorithmPriority   Algorithm = "Priority"
	AlgorithmRoundRobin Algorithm = "RR"
)

// RequeueOrder decides, for round robin, whether processes arriving at the exact
// instant a quantum expires join the ready queue before or after the process
// whose quantum expired.
type RequeueOrder string

const (
	// RequeueArrivalsFirst appends same-instant arrivals ahead of the requeued process.
	RequeueArrivalsFirst RequeueOrder = "arrivals-first"
	// RequeueRunningFirst appends the requeued process ahead of same-instant arrivals.
	RequeueRunningFirst RequeueOrder = "requeue-first"
)

// algorithmAliases maps lower-cased accepted spellings to canonical algorithms.
var algorithmAliases = map[string]Algorithm{
	"fcfs":        AlgorithmFCFS,
	"sjf":         AlgorithmSJF,
	"priority":    AlgorithmPriority,
	"rr":          AlgorithmRoundRobin,
	"roundrobin":  AlgorithmRoundRobin,
	"round-robin": AlgorithmRoundRobin,
}

// validRequeueOrders is the set of recognized requeue orders. Empty defaults to arrivals-first.
var validRequeueOrders = map[RequeueOrder]bool{
	"":                   true,
	RequeueArrivalsFirst: true,
	RequeueRunningFirst:  true,
}

// ParseAlgorithm resolves a user-supplied algorithm token, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, name)
}

// IsValidRequeueOrder returns true if the given string is a recognized requeue order.
func IsValidRequeueOrder(order string) bool {
	return validRequeueOrders[RequeueOrder(order)]
}

// ValidAlgorithmNames returns the canonical algorithm tokens in display order.
func ValidAlgorithmNames() []string {
	return []string{string(AlgorithmFCFS), string(AlgorithmSJF), string(AlgorithmPriority), string(AlgorithmRoundRobin)}
}

// SimulationConfig selects the policy for one simulation.
type SimulationConfig struct {
	Algorithm    Algorithm    `json:"algorithm"`
	Preemptive   bool         `json:"preemptive"`             // SJF and Priority only; FCFS never preempts, RR always does
	TimeQuantum  int64        `json:"timeQuantum,omitempty"`  // RR only, must be > 0
	RequeueOrder RequeueOrder `json:"requeueOrder,omitempty"` // RR only; empty means arrivals-first
}

// Validate normalizes the algorithm token and checks the parameters it needs.
// Returns a copy so the caller's value stays untouched.
func (c SimulationConfig) Validate() (SimulationConfig, error) {
	alg, err := ParseAlgorithm(string(c.Algorithm))
	if err != nil {
		return c, err
	}
	c.Algorithm = alg
	if !IsValidRequeueOrder(string(c.RequeueOrder)) {
		return c, fmt.Errorf("%w: unknown requeue order %q", ErrInvalidConfig, c.RequeueOrder)
	}
	if c.RequeueOrder == "" {
		c.RequeueOrder = RequeueArrivalsFirst
	}
	if alg == AlgorithmRoundRobin && c.TimeQuantum <= 0 {
		return c, fmt.Errorf("%w: round robin time quantum must be positive, got %d", ErrInvalidConfig, c.TimeQuantum)
	}
	return c, nil
}

// String renders the configuration the way it is logged, e.g. "RR(q=2)" or "SJF(preemptive)".
func (c SimulationConfig) String() string {
	switch c.Algorithm {
	case AlgorithmRoundRobin:
		return fmt.Sprintf("%s(q=%d)", c.Algorithm, c.TimeQuantum)
	case AlgorithmSJF, AlgorithmPriority:
		if c.Preemptive {
			return fmt.Sprintf("%s(preemptive)", c.Algorithm)
		}
	}
	return string(c.Algorithm)
}
