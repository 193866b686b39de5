package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/schedsim/internal/store"
)

var (
	historyPath string // SQLite run history read by the runs subcommands
	runsLimit   int    // Runs listed by runs list
)

// runsCmd groups the run history subcommands
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded simulation runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		history := mustOpenHistory(cmd.Context())
		defer history.Close()

		runs, err := history.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			logrus.Fatalf("Listing runs: %v", err)
		}
		writeRunList(cmd.OutOrStdout(), runs)
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the schedule of one recorded run",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		history := mustOpenHistory(cmd.Context())
		defer history.Close()

		run, err := history.GetRun(cmd.Context(), args[0])
		if err != nil {
			logrus.Fatalf("Loading run: %v", err)
		}
		if run == nil {
			logrus.Fatalf("Run %s not found in %s", args[0], historyPath)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Run %s (%s)\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"))
		printResult(out, run.Config(), run.Result)
	},
}

func mustOpenHistory(ctx context.Context) *store.SQLiteStore {
	if historyPath == "" {
		logrus.Fatalf("--db is required")
	}
	history, err := openStore(ctx, historyPath)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	return history
}

// openStore opens and migrates the SQLite run history at path.
func openStore(ctx context.Context, path string) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(path, logrus.NewEntry(logrus.StandardLogger()))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return st, nil
}

func writeRunList(w io.Writer, runs []*store.Run) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Created", "Algorithm", "Processes", "Avg Waiting", "Avg Turnaround"})
	for _, run := range runs {
		row := []string{run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Config().String(), fmt.Sprint(len(run.Processes)), "", ""}
		if run.Result != nil {
			row[4] = fmt.Sprintf("%.2f", run.Result.AverageWaitingTime)
			row[5] = fmt.Sprintf("%.2f", run.Result.AverageTurnaroundTime)
		}
		table.Append(row)
	}
	table.Render()
}

func init() {
	runsCmd.PersistentFlags().StringVar(&historyPath, "db", "", "SQLite database holding the run history (required)")
	runsListCmd.Flags().IntVar(&runsLimit, "limit", store.DefaultListLimit, "Maximum number of runs to list")

	runsCmd.AddCommand(runsListCmd, runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}
