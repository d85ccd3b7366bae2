package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values. The input and output names match the
// endpoint API workflow this tool grew out of: the API response is
// dropped next to the binary and the workbook lands beside it.
const (
	// DefaultInputFile is the inventory file read when --input is not given.
	DefaultInputFile = "response.json"

	// DefaultOutputFile is the workbook written when --output is not given.
	DefaultOutputFile = "devices_grouped_rows.xlsx"

	// DefaultConfigFile is the config file name searched for in the
	// working directory and the user's home directory.
	DefaultConfigFile = ".fleetsheet"

	// AppName is the application name used for XDG directory paths.
	AppName = "fleetsheet"
)

// Summary output formats accepted by the CLI and the config file.
const (
	// FormatNone produces the workbook only.
	FormatNone = ""

	// FormatJSON additionally emits a JSON report of the decoded fleet.
	FormatJSON = "json"

	// FormatMarkdown additionally emits a Markdown fleet summary.
	FormatMarkdown = "markdown"
)

// Config holds all configuration options for fleetsheet.
// It is populated from CLI flags and passed through the application via
// dependency injection rather than global state.
type Config struct {
	// InputPath is the inventory JSON file to read.
	InputPath string

	// OutputPath is the workbook file to write.
	OutputPath string

	// SummaryFormat selects an additional summary report: FormatNone,
	// FormatJSON or FormatMarkdown. The workbook is always produced.
	SummaryFormat string

	// SummaryPath is the file the summary report is written to.
	// Empty means stdout.
	SummaryPath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .fleetsheet in the current directory, the
	// home directory, and the XDG config directory.
	ConfigFilePath string

	// SaveHistory records a run-history entry after a successful report.
	// History failures never fail the run; they are logged and ignored.
	SaveHistory bool

	// HistoryDir is the directory holding the run-history database.
	// Defaults to the XDG data directory for the application.
	HistoryDir string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		InputPath:   DefaultInputFile,
		OutputPath:  DefaultOutputFile,
		SaveHistory: true,
		HistoryDir:  XDGDataDir(),
	}
}

// Validate checks the configuration for inconsistencies.
// It returns one of the package sentinel errors on failure.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrEmptyInputPath
	}
	if c.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	switch c.SummaryFormat {
	case FormatNone, FormatJSON, FormatMarkdown:
	default:
		return ErrUnknownSummaryFormat
	}
	return nil
}

// XDGDataDir returns the application's data directory
// (~/.local/share/fleetsheet on Linux).
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the application's config directory
// (~/.config/fleetsheet on Linux).
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
