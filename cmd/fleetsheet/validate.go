package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleetsheet/fleetsheet/internal/config"
	"github.com/fleetsheet/fleetsheet/internal/inventory"
	"github.com/fleetsheet/fleetsheet/internal/model"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an inventory export without writing a report",
		Long: `Validate parses the inventory file and reports what it found, without
producing a workbook. It fails with the same diagnostics a report run
would: a missing file, invalid JSON, or a device entry missing a
required field.`,
		Args: cobra.NoArgs,
		RunE: runValidateCmd,
	}

	cmd.Flags().StringP("input", "i", config.DefaultInputFile,
		"Inventory JSON file to check")

	return cmd
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, _ []string) error {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}

	fleet, err := inventory.Load(input)
	if err != nil {
		return err
	}

	summary := model.NewFleetSummary(fleet)
	fmt.Fprintf(cmd.OutOrStdout(),
		"OK: %d devices, %d software entries, %d vulnerabilities\n",
		summary.DeviceCount, summary.SoftwareCount, summary.VulnerabilityCount)
	return nil
}
