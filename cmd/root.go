package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/schedsim/internal/store"
	"github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
)

var (
	// CLI flags for the run command
	workloadPath  string // YAML workload: policy and processes
	processesCSV  string // CSV of id,arrival,burst[,priority]
	algorithmName string // Scheduling algorithm
	preemptive    bool   // Preemptive variant of SJF or Priority
	timeQuantum   int64  // Round-robin quantum (in ticks)
	requeueOrder  string // Round-robin same-instant ordering
	csvOutPath    string // Write the per-process CSV report here
	traceLevel    string // Decision trace verbosity

	// Shared flags
	logLevel string // Log verbosity level
	dbPath   string // SQLite run history
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Deterministic CPU scheduling simulator",
}

// runCmd executes one simulation using a workload file or CSV plus CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one scheduling policy over a process set",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level: %s", traceLevel)
		}
		opts := runOptions{
			WorkloadPath: workloadPath,
			ProcessesCSV: processesCSV,
			Algorithm:    algorithmName,
			Preemptive:   preemptive,
			TimeQuantum:  timeQuantum,
			RequeueOrder: requeueOrder,
		}
		processes, cfg, err := resolveRunInput(opts, cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Starting simulation of %d processes with %s", len(processes), cfg)
		result, st, err := sim.RunWithTrace(processes, cfg, trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		out := cmd.OutOrStdout()
		printResult(out, cfg, result)
		if st != nil {
			printTraceSummary(out, trace.Summarize(st))
		}

		if csvOutPath != "" {
			if err := writeCSVFile(csvOutPath, result); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("CSV report written to %s", csvOutPath)
		}

		if dbPath != "" {
			history, err := openStore(cmd.Context(), dbPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			defer history.Close()
			run := &store.Run{
				Algorithm:    string(cfg.Algorithm),
				Preemptive:   cfg.Preemptive,
				TimeQuantum:  cfg.TimeQuantum,
				RequeueOrder: string(cfg.RequeueOrder),
				Processes:    processes,
				Result:       result,
			}
			if err := history.SaveRun(cmd.Context(), run); err != nil {
				logrus.Fatalf("Saving run: %v", err)
			}
			fmt.Fprintf(out, "Run recorded as %s\n", run.ID)
		}

		logrus.Info("Simulation complete.")
	},
}

// setLogLevel applies --log to the package-level logger.
func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&workloadPath, "workload", "", "YAML workload file (algorithm, quantum and processes)")
	runCmd.Flags().StringVar(&processesCSV, "processes-csv", "", "CSV file of id,arrival,burst[,priority] rows")
	runCmd.Flags().StringVar(&algorithmName, "algorithm", string(sim.AlgorithmFCFS), "Scheduling algorithm (FCFS, SJF, Priority, RR)")
	runCmd.Flags().BoolVar(&preemptive, "preemptive", false, "Preemptive variant of SJF (SRTF) or Priority")
	runCmd.Flags().Int64Var(&timeQuantum, "quantum", 2, "Round-robin time quantum (in ticks)")
	runCmd.Flags().StringVar(&requeueOrder, "requeue-order", string(sim.RequeueArrivalsFirst), "Round-robin order when an arrival coincides with a quantum expiry (arrivals-first, requeue-first)")
	runCmd.Flags().StringVar(&csvOutPath, "csv-out", "", "Write the per-process CSV report to this file")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to record the run in")

	rootCmd.AddCommand(runCmd)
}
