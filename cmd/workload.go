package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cpusched/schedsim/sim"
)

// runOptions carries the run command's input flags.
type runOptions struct {
	WorkloadPath string
	ProcessesCSV string
	Algorithm    string
	Preemptive   bool
	TimeQuantum  int64
	RequeueOrder string
}

var errNoProcesses = errors.New("no processes given: pass --workload or --processes-csv")

// resolveRunInput merges a workload file, a process CSV and the policy flags into
// one validated simulation input. Without a workload file the flags define the
// policy; with one, a flag only overrides the file when set explicitly.
// CSV processes replace the file's process list.
func resolveRunInput(opts runOptions, changed func(name string) bool) ([]sim.Process, sim.SimulationConfig, error) {
	if opts.WorkloadPath == "" && opts.ProcessesCSV == "" {
		return nil, sim.SimulationConfig{}, errNoProcesses
	}

	w := &sim.Workload{}
	if opts.WorkloadPath != "" {
		var err error
		if w, err = sim.LoadWorkload(opts.WorkloadPath); err != nil {
			return nil, sim.SimulationConfig{}, err
		}
	}
	fromFile := opts.WorkloadPath != ""
	override := func(name string) bool { return !fromFile || changed(name) }

	if override("algorithm") {
		w.Algorithm = opts.Algorithm
	}
	if override("preemptive") {
		w.Preemptive = opts.Preemptive
	}
	if override("quantum") {
		w.TimeQuantum = opts.TimeQuantum
	}
	if override("requeue-order") {
		w.RequeueOrder = opts.RequeueOrder
	}

	if opts.ProcessesCSV != "" {
		f, err := os.Open(opts.ProcessesCSV)
		if err != nil {
			return nil, sim.SimulationConfig{}, fmt.Errorf("reading processes: %w", err)
		}
		defer f.Close()
		processes, err := sim.ReadProcessesCSV(f)
		if err != nil {
			return nil, sim.SimulationConfig{}, err
		}
		if len(w.Processes) > 0 {
			logrus.Warnf("--processes-csv replaces the %d processes of %s", len(w.Processes), opts.WorkloadPath)
		}
		w.Processes = processes
	}

	cfg, err := w.Config().Validate()
	if err != nil {
		return nil, sim.SimulationConfig{}, err
	}
	if err := sim.ValidateProcesses(w.Processes); err != nil {
		return nil, sim.SimulationConfig{}, err
	}
	return w.Processes, cfg, nil
}
