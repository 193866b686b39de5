package sim

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Workload is a process set plus its policy, loadable from a YAML file.
//
//	algorithm: RR
//	time_quantum: 2
//	processes:
//	  - {id: P1, arrival_time: 0, burst_time: 5}
//	  - {id: P2, arrival_time: 1, burst_time: 3}
type Workload struct {
	Algorithm    string    `yaml:"algorithm"`
	Preemptive   bool      `yaml:"preemptive,omitempty"`
	TimeQuantum  int64     `yaml:"time_quantum,omitempty"`
	RequeueOrder string    `yaml:"requeue_order,omitempty"`
	Processes    []Process `yaml:"processes"`
}

// Config returns the SimulationConfig described by the workload (not yet validated).
func (w *Workload) Config() SimulationConfig {
	return SimulationConfig{
		Algorithm:    Algorithm(w.Algorithm),
		Preemptive:   w.Preemptive,
		TimeQuantum:  w.TimeQuantum,
		RequeueOrder: RequeueOrder(w.RequeueOrder),
	}
}

// ParseWorkload decodes a YAML workload with strict field checking: typos must cause errors.
func ParseWorkload(r io.Reader) (*Workload, error) {
	var w Workload
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return &w, nil
		}
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	return &w, nil
}

// LoadWorkload reads and parses a YAML workload file.
func LoadWorkload(path string) (*Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	defer f.Close()
	w, err := ParseWorkload(f)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("loaded workload %s: %d processes, algorithm %q", path, len(w.Processes), w.Algorithm)
	return w, nil
}

// ReadProcessesCSV reads rows of "id,arrival,burst[,priority]".
// A first row whose arrival column is not numeric is treated as a header and skipped.
func ReadProcessesCSV(r io.Reader) ([]Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	processes := make([]Process, 0)
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv at row %d: %w", row, err)
		}
		if len(record) < 3 || len(record) > 4 {
			return nil, fmt.Errorf("csv row %d: want 3 or 4 columns (id,arrival,burst[,priority]), got %d", row, len(record))
		}
		if row == 0 {
			if _, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64); err != nil {
				continue // header
			}
		}

		p := Process{ID: strings.TrimSpace(record[0])}
		if p.ArrivalTime, err = parseCSVInt(record[1]); err != nil {
			return nil, fmt.Errorf("csv row %d: invalid arrival time: %w", row, err)
		}
		if p.BurstTime, err = parseCSVInt(record[2]); err != nil {
			return nil, fmt.Errorf("csv row %d: invalid burst time: %w", row, err)
		}
		if len(record) == 4 {
			if p.Priority, err = parseCSVInt(record[3]); err != nil {
				return nil, fmt.Errorf("csv row %d: invalid priority: %w", row, err)
			}
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func parseCSVInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
