package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/workload"
)

var (
	// CLI flags for the generate command
	genSpecPath    string  // YAML generator spec; flags below fill a spec when absent
	genCount       int     // Number of processes
	genSeed        int64   // Master seed
	genArrival     string  // Inter-arrival distribution
	genArrivalMean float64 // Mean inter-arrival time (constant, exponential, gaussian)
	genArrivalMin  int64   // Inter-arrival lower bound (uniform, gaussian)
	genArrivalMax  int64   // Inter-arrival upper bound (uniform, gaussian)
	genBurst       string  // Burst distribution
	genBurstMean   float64 // Mean burst (constant, exponential, gaussian)
	genBurstStdDev float64 // Burst standard deviation (gaussian)
	genBurstMin    int64   // Burst lower bound (uniform, gaussian)
	genBurstMax    int64   // Burst upper bound (uniform, gaussian)
	genPriorityMax int64   // Priorities drawn uniformly from [1, max]; 0 leaves them all 0
	genAlgorithm   string  // Algorithm recorded in the emitted workload
	genPreemptive  bool
	genQuantum     int64
	genOutPath     string // Write the workload here instead of stdout
)

// generateCmd writes a seeded synthetic workload file that `run --workload` accepts.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a seeded synthetic workload",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		spec, err := resolveGeneratorSpec(cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		processes, err := workload.GenerateProcesses(spec)
		if err != nil {
			logrus.Fatalf("Generating workload: %v", err)
		}

		cfg, err := sim.SimulationConfig{Algorithm: sim.Algorithm(genAlgorithm), Preemptive: genPreemptive, TimeQuantum: genQuantum}.Validate()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		data, err := yaml.Marshal(workloadFor(cfg, processes))
		if err != nil {
			logrus.Fatalf("Encoding workload: %v", err)
		}

		if genOutPath == "" {
			cmd.OutOrStdout().Write(data)
			return
		}
		if err := os.WriteFile(genOutPath, data, 0o644); err != nil {
			logrus.Fatalf("Writing workload: %v", err)
		}
		logrus.Infof("Wrote %d processes to %s", len(processes), genOutPath)
	},
}

// resolveGeneratorSpec loads --spec when given, with --count and --seed
// overriding the file only when set explicitly.
func resolveGeneratorSpec(changed func(string) bool) (*workload.GeneratorSpec, error) {
	if genSpecPath == "" {
		spec := &workload.GeneratorSpec{
			Count:        genCount,
			Seed:         genSeed,
			InterArrival: distFromFlags(genArrival, genArrivalMean, 0, genArrivalMin, genArrivalMax),
			Burst:        distFromFlags(genBurst, genBurstMean, genBurstStdDev, genBurstMin, genBurstMax),
		}
		if genPriorityMax > 0 {
			spec.Priority = distFromFlags("uniform", 0, 0, 1, genPriorityMax)
		}
		return spec, nil
	}

	spec, err := workload.LoadGeneratorSpec(genSpecPath)
	if err != nil {
		return nil, err
	}
	if changed("count") {
		spec.Count = genCount
	}
	if changed("seed") {
		spec.Seed = genSeed
	}
	return spec, nil
}

// workloadFor records only the policy fields the algorithm reads.
func workloadFor(cfg sim.SimulationConfig, processes []sim.Process) *sim.Workload {
	w := &sim.Workload{Algorithm: string(cfg.Algorithm), Processes: processes}
	switch cfg.Algorithm {
	case sim.AlgorithmRoundRobin:
		w.TimeQuantum = cfg.TimeQuantum
	case sim.AlgorithmSJF, sim.AlgorithmPriority:
		w.Preemptive = cfg.Preemptive
	}
	return w
}

// distFromFlags keeps only the parameters the named distribution reads.
func distFromFlags(kind string, mean, stdDev float64, min, max int64) workload.DistSpec {
	params := map[string]float64{}
	switch kind {
	case "constant":
		params["value"] = mean
	case "uniform":
		params["min"], params["max"] = float64(min), float64(max)
	case "exponential":
		params["mean"] = mean
	case "gaussian":
		params["mean"], params["std_dev"] = mean, stdDev
		params["min"], params["max"] = float64(min), float64(max)
	}
	return workload.DistSpec{Type: kind, Params: params}
}

func init() {
	generateCmd.Flags().StringVar(&genSpecPath, "spec", "", "YAML generator spec (count, seed, inter_arrival, burst, priority)")
	generateCmd.Flags().IntVar(&genCount, "count", 10, "Number of processes")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for the arrival, burst and priority streams")
	generateCmd.Flags().StringVar(&genArrival, "arrival", "exponential", "Inter-arrival distribution (constant, uniform, exponential, gaussian)")
	generateCmd.Flags().Float64Var(&genArrivalMean, "arrival-mean", 3, "Mean inter-arrival time (in ticks)")
	generateCmd.Flags().Int64Var(&genArrivalMin, "arrival-min", 0, "Minimum inter-arrival time (in ticks)")
	generateCmd.Flags().Int64Var(&genArrivalMax, "arrival-max", 6, "Maximum inter-arrival time (in ticks)")
	generateCmd.Flags().StringVar(&genBurst, "burst", "uniform", "Burst distribution (constant, uniform, exponential, gaussian)")
	generateCmd.Flags().Float64Var(&genBurstMean, "burst-mean", 5, "Mean burst time (in ticks)")
	generateCmd.Flags().Float64Var(&genBurstStdDev, "burst-stddev", 2, "Burst standard deviation (in ticks)")
	generateCmd.Flags().Int64Var(&genBurstMin, "burst-min", 1, "Minimum burst time (in ticks)")
	generateCmd.Flags().Int64Var(&genBurstMax, "burst-max", 10, "Maximum burst time (in ticks)")
	generateCmd.Flags().Int64Var(&genPriorityMax, "priority-max", 0, "Draw priorities uniformly from [1, max]; 0 disables")
	generateCmd.Flags().StringVar(&genAlgorithm, "algorithm", string(sim.AlgorithmFCFS), "Algorithm recorded in the workload")
	generateCmd.Flags().BoolVar(&genPreemptive, "preemptive", false, "Preemptive flag recorded in the workload")
	generateCmd.Flags().Int64Var(&genQuantum, "quantum", 2, "Round-robin quantum recorded in the workload")
	generateCmd.Flags().StringVarP(&genOutPath, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(generateCmd)
}
