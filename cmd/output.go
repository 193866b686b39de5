package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cpusched/schedsim/internal/report"
	"github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
)

// printResult writes the Gantt strip, the schedule table and the summary line.
func printResult(w io.Writer, cfg sim.SimulationConfig, result *sim.SimulationResult) {
	name := cfg.String()
	if valid, err := cfg.Validate(); err == nil {
		name = sim.NewPolicy(valid).Name()
	}
	fmt.Fprintf(w, "%s: %d processes\n", name, len(result.Processes))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Gantt schedule")
	report.WriteGantt(w, result.Gantt)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Schedule table")
	report.WriteTable(w, result)
	report.WriteSummary(w, result)
}

func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Decision trace")
	report.WriteTraceSummary(w, summary)
}

func writeCSVFile(path string, result *sim.SimulationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv report: %w", err)
	}
	if err := report.WriteCSV(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
