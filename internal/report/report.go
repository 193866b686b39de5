// Package report renders simulation results for people and spreadsheets:
// a text Gantt strip, a tablewriter schedule table and a CSV export.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
)

// CSVHeader is the column layout of the per-process CSV export.
var CSVHeader = []string{"ID", "Start Time", "End Time", "Waiting Time", "Turnaround Time"}

// WriteCSV writes one row per process, in result order.
func WriteCSV(w io.Writer, result *sim.SimulationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, pr := range result.Processes {
		row := []string{
			pr.ID,
			strconv.FormatInt(pr.StartTime, 10),
			strconv.FormatInt(pr.EndTime, 10),
			strconv.FormatInt(pr.WaitingTime, 10),
			strconv.FormatInt(pr.TurnaroundTime, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", pr.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable renders the schedule table with a footer of averages.
func WriteTable(w io.Writer, result *sim.SimulationResult) {
	rows := make([][]string, 0, len(result.Processes))
	for _, pr := range result.Processes {
		rows = append(rows, []string{
			pr.ID,
			fmt.Sprint(pr.ArrivalTime),
			fmt.Sprint(pr.BurstTime),
			fmt.Sprint(pr.Priority),
			fmt.Sprint(pr.StartTime),
			fmt.Sprint(pr.EndTime),
			fmt.Sprint(pr.WaitingTime),
			fmt.Sprint(pr.TurnaroundTime),
			fmt.Sprint(pr.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Start", "End", "Waiting", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", result.AverageResponseTime)})
	table.Render()
}

// WriteSummary prints the aggregate figures that do not fit the table.
func WriteSummary(w io.Writer, result *sim.SimulationResult) {
	_, _ = fmt.Fprintf(w, "Makespan: %d  Idle: %d  CPU utilization: %.2f%%  Throughput: %.3f/tick  Context switches: %d\n",
		result.Makespan, result.IdleTime, result.CPUUtilization*100, result.Throughput, result.ContextSwitches)
}

// WriteGantt draws the timeline as a strip of labelled cells with the slice
// boundaries underneath, e.g.
//
//	| P1 | P2 | idle |
//	0    5    8      10
func WriteGantt(w io.Writer, slices []sim.ExecutionSlice) {
	if len(slices) == 0 {
		return
	}
	var cells, ticks strings.Builder
	cells.WriteString("|")
	for _, s := range slices {
		label := s.Label()
		start := strconv.FormatInt(s.Start, 10)
		width := max(len(label), len(start)) + 2
		pad := width - len(label)
		cells.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "|")
		ticks.WriteString(start + strings.Repeat(" ", width+1-len(start)))
	}
	ticks.WriteString(strconv.FormatInt(slices[len(slices)-1].End, 10))
	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, ticks.String())
}

// WriteTraceSummary renders per-process dispatch counts and the totals of a decision trace.
func WriteTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	ids := make([]string, 0, len(summary.DispatchDistribution))
	for id := range summary.DispatchDistribution {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Dispatches"})
	for _, id := range ids {
		table.Append([]string{id, fmt.Sprint(summary.DispatchDistribution[id])})
	}
	table.SetFooter([]string{"Total", fmt.Sprint(summary.TotalDispatches)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Preemptions: %d  Quantum expiries: %d\n", summary.Preemptions, summary.QuantumExpiries)
}
