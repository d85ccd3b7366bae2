package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fleetsheet/fleetsheet/internal/config"
	"github.com/fleetsheet/fleetsheet/internal/database"
	"github.com/fleetsheet/fleetsheet/internal/inventory"
	"github.com/fleetsheet/fleetsheet/internal/model"
	"github.com/fleetsheet/fleetsheet/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the inventory as a three-sheet Excel workbook",
		Long: `Report reads the device inventory export and renders it as an Excel
workbook with three sheets:

- Device: one row per device (name, addresses, owner, OS)
- Software: installed applications, grouped per device
- Vulnerability: known vulnerabilities, grouped per device

The grouped sheets merge the device-name column across each device's
rows. Columns are sized to their content up to a fixed cap.

Examples:
  # Read response.json, write devices_grouped_rows.xlsx
  fleetsheet report

  # Pick the input and output explicitly
  fleetsheet report --input fleet.json --output fleet.xlsx

  # Also print a Markdown summary to the terminal
  fleetsheet report --markdown

  # Write a JSON summary report next to the workbook
  fleetsheet report --json --summary-output fleet-summary.json

Configuration file (.fleetsheet) example:
  input: exports/response.json
  output: reports/fleet.xlsx
  format: markdown
  history: false`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	// Input and output flags
	cmd.Flags().StringP("input", "i", config.DefaultInputFile,
		"Inventory JSON file to read")
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Workbook file to write (directories are created if needed)")

	// Summary report flags
	cmd.Flags().BoolP("json", "j", false,
		"Also emit a JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Also emit a Markdown summary (mutually exclusive with --json)")
	cmd.Flags().StringP("summary-output", "s", "",
		"Write the summary report to this file instead of stdout")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .fleetsheet in current, home, or XDG config directory)")

	// History
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	return runReport(cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra flags.
// Flags take precedence over config-file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configFlag

	// Load the optional config file first so flags can override it.
	// If the user explicitly named a config file, error when missing;
	// otherwise silently run on defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(cf)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("input") {
		if cfg.InputPath, err = cmd.Flags().GetString("input"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		if cfg.OutputPath, err = cmd.Flags().GetString("output"); err != nil {
			return nil, err
		}
	}

	jsonReport, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	markdownReport, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	switch {
	case jsonReport && markdownReport:
		return nil, config.ErrConflictingReportFormats
	case jsonReport:
		cfg.SummaryFormat = config.FormatJSON
	case markdownReport:
		cfg.SummaryFormat = config.FormatMarkdown
	}

	if cfg.SummaryPath, err = cmd.Flags().GetString("summary-output"); err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	if noHistory {
		cfg.SaveHistory = false
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runReport executes the report run: load, render, summarize, record.
func runReport(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("loading inventory", "input", cfg.InputPath)

	fleet, err := inventory.Load(cfg.InputPath)
	if err != nil {
		return err
	}

	if err := writeWorkbook(cfg.OutputPath, fleet); err != nil {
		return err
	}
	logger.Debug("workbook written", "output", cfg.OutputPath)

	if cfg.SummaryFormat != config.FormatNone {
		if err := writeSummary(cmd, cfg, fleet); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d devices. Results saved to %s\n",
		len(fleet), cfg.OutputPath)

	if cfg.SaveHistory {
		recordRun(cmd, cfg, fleet, logger)
	}
	return nil
}

// writeWorkbook renders the fleet into the workbook file, creating
// parent directories as needed.
func writeWorkbook(path string, fleet model.Fleet) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create workbook file: %w", err)
	}

	if _, err := report.NewExcelWriter(f).Write(fleet); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeSummary emits the optional JSON or Markdown report to the
// summary file, or stdout when no file is configured.
func writeSummary(cmd *cobra.Command, cfg *config.Config, fleet model.Fleet) error {
	var out io.Writer = cmd.OutOrStdout()
	if cfg.SummaryPath != "" {
		f, err := os.Create(cfg.SummaryPath) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create summary file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Best effort on close after write error
		out = f
	}

	var w report.Writer
	switch cfg.SummaryFormat {
	case config.FormatJSON:
		w = report.NewJSONWriter(out, report.WithPrettyPrint())
	case config.FormatMarkdown:
		w = report.NewMarkdownWriter(out)
	}

	if _, err := w.Write(fleet); err != nil {
		return fmt.Errorf("failed to write %s summary: %w", cfg.SummaryFormat, err)
	}
	return nil
}

// recordRun stores the run in the history database. History is best
// effort: any failure is logged and otherwise ignored so a report run
// never fails because of it.
func recordRun(cmd *cobra.Command, cfg *config.Config, fleet model.Fleet, logger *slog.Logger) {
	db, err := database.Open(cfg.HistoryDir, database.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open history database", "dir", cfg.HistoryDir, "error", err)
		return
	}
	defer db.Close() //nolint:errcheck // Best effort

	summary := model.NewFleetSummary(fleet)
	run := database.NewRun(cfg.InputPath, cfg.OutputPath, summary)
	if _, err := db.SaveRun(cmd.Context(), run); err != nil {
		logger.Warn("failed to record run history", "error", err)
		return
	}
	logger.Debug("run recorded", "devices", summary.DeviceCount)
}
