package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the flag wiring.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyInputPath is returned when the input path resolves to an
	// empty string, which would leave nothing to read.
	ErrEmptyInputPath = errors.New("empty input path: provide an inventory file")

	// ErrEmptyOutputPath is returned when the output path resolves to an
	// empty string, which would leave nowhere to write the workbook.
	ErrEmptyOutputPath = errors.New("empty output path: provide a workbook destination")

	// ErrUnknownSummaryFormat is returned when the summary format is not
	// one of "json" or "markdown".
	ErrUnknownSummaryFormat = errors.New(`unknown summary format: use "json" or "markdown"`)

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one summary format can be used at
	// a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
