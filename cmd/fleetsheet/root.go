// Package main provides the entry point for the fleetsheet CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for fleetsheet.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleetsheet",
		Short: "Render device inventory exports as Excel workbook reports",
		Long: `fleetsheet renders a device inventory export as an Excel workbook.

The input is a JSON array of devices, each with its operating system,
installed software, and known vulnerabilities. The output workbook holds
three sheets (Device, Software, Vulnerability); the Software and
Vulnerability sheets group their rows per device with merged name cells.

Running "fleetsheet report" with no flags reads response.json from the
working directory and writes devices_grouped_rows.xlsx beside it.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
