package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fleetsheet/fleetsheet/internal/config"
	"github.com/fleetsheet/fleetsheet/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past report runs",
		Long: `History lists the report runs recorded in the history database, newest
first, with each run's device and vulnerability counts. Runs are
recorded automatically by "fleetsheet report" unless --no-history is
given.`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to list (0 for all)")
	cmd.Flags().String("data-dir", config.XDGDataDir(), "Directory holding the history database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}

	db, err := database.Open(dataDir, database.Options{CreateIfNotExists: false})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet.")
		return nil //nolint:nilerr // A missing database just means no runs were recorded
	}
	defer db.Close() //nolint:errcheck // Read-only access

	runs, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tDEVICES\tSOFTWARE\tVULNS\tEXPLOITABLE\tOUTPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.DeviceCount,
			run.SoftwareCount,
			run.VulnerabilityCount,
			run.ExploitableCount,
			run.OutputPath,
		)
	}
	return w.Flush()
}
