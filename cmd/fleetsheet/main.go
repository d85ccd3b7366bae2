// Package main provides the entry point for the fleetsheet CLI.
//
// fleetsheet renders a device inventory export (a JSON array of devices
// with their operating system, installed software, and known
// vulnerabilities) as a styled three-sheet Excel workbook.
//
// Usage:
//
//	fleetsheet report
//	fleetsheet report --input response.json --output fleet.xlsx
//
// See --help for all available options.
package main

// main is the entry point for fleetsheet.
func main() {
	Execute()
}
