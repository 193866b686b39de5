package sim

import "errors"

// Error taxonomy. Every failure returned by this package wraps one of these,
// so callers can classify with errors.Is.
var (
	// ErrInvalidProcessSet reports duplicate or empty ids, non-positive burst
	// times, or negative arrival times.
	ErrInvalidProcessSet = errors.New("invalid process set")

	// ErrInvalidConfig reports an unknown algorithm or requeue order, or a
	// non-positive time quantum for round robin.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrIncompleteSchedule reports a timeline that does not account for every
	// process's burst. It indicates an engine defect, not bad input.
	ErrIncompleteSchedule = errors.New("incomplete schedule")
)
