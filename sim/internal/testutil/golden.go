// Package testutil provides shared test infrastructure for the schedsim engine.
// It holds the golden scenario dataset types and assertion helpers used by
// sim/ and the packages layered on top of it.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenProcess mirrors one input process of a scenario.
type GoldenProcess struct {
	ID          string `json:"id"`
	ArrivalTime int64  `json:"arrival_time"`
	BurstTime   int64  `json:"burst_time"`
	Priority    int64  `json:"priority"`
}

// GoldenTestCase represents a single scheduling scenario from the golden dataset.
type GoldenTestCase struct {
	Name         string          `json:"name"`
	Algorithm    string          `json:"algorithm"`
	Preemptive   bool            `json:"preemptive"`
	TimeQuantum  int64           `json:"time_quantum"`
	RequeueOrder string          `json:"requeue_order"`
	Processes    []GoldenProcess `json:"processes"`
	Expected     GoldenMetrics   `json:"expected"`
}

// GoldenMetrics represents the expected result of a scenario.
type GoldenMetrics struct {
	// Coalesced timeline rendered as "P1:[0,5)", idle as "idle:[5,10)"
	Gantt []string `json:"gantt"`

	// Exact per-process metrics
	Waiting    map[string]int64 `json:"waiting"`
	Turnaround map[string]int64 `json:"turnaround"`

	// Aggregates
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	Makespan              int64   `json:"makespan"`
	IdleTime              int64   `json:"idle_time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
