package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/fleetsheet/fleetsheet/internal/config"
	"github.com/fleetsheet/fleetsheet/internal/inventory"
)

// testInventory is a two-device export: one device with findings, one bare.
const testInventory = `[
	{
		"name": "host1",
		"fqdn": ["host1.corp.example"],
		"ipAddresses": ["10.0.0.1"],
		"macAddresses": ["aa:bb:cc:dd:ee:ff"],
		"owner": "alice",
		"os": {"name": "Linux", "version": "5.10"},
		"software": [
			{"name": "nginx", "version": "1.24.0", "vendor": "F5"},
			{"name": "openssl", "version": "3.0.2", "vendor": "OpenSSL"}
		],
		"vulnerabilities": [
			{
				"kasperskyID": "KLA1",
				"productName": "nginx",
				"descriptionURL": "https://example.com/KLA1",
				"recommendedMajorPatch": "1",
				"recommendedMinorPatch": "0",
				"severityStr": "High",
				"severity": 4,
				"cve": ["CVE-2020-1"],
				"exploitExists": true,
				"malwareExists": false
			}
		]
	},
	{
		"name": "host2",
		"fqdn": [],
		"ipAddresses": ["10.0.0.3"],
		"macAddresses": [],
		"owner": "bob",
		"os": {"name": "Windows", "version": "10"},
		"software": [],
		"vulnerabilities": []
	}
]`

// runCommand executes the CLI with args, returning combined stdout and
// the command error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeTestInventory writes the test export into a temp dir and returns
// the input path plus a workbook path in the same dir.
func writeTestInventory(t *testing.T) (inputPath, outputPath string) {
	t.Helper()

	dir := t.TempDir()
	inputPath = filepath.Join(dir, "response.json")
	outputPath = filepath.Join(dir, "devices_grouped_rows.xlsx")
	if err := os.WriteFile(inputPath, []byte(testInventory), 0600); err != nil {
		t.Fatalf("failed to write test inventory: %v", err)
	}
	return inputPath, outputPath
}

func TestReportCmd(t *testing.T) {
	t.Parallel()

	t.Run("renders the workbook and prints the status line", func(t *testing.T) {
		t.Parallel()

		input, output := writeTestInventory(t)
		out, err := runCommand(t, "report", "-i", input, "-o", output, "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out, "Processed 2 devices. Results saved to "+output) {
			t.Errorf("missing status line in output:\n%s", out)
		}

		f, err := excelize.OpenFile(output)
		if err != nil {
			t.Fatalf("failed to open workbook: %v", err)
		}
		defer f.Close() //nolint:errcheck // Test cleanup

		sheets := f.GetSheetList()
		if len(sheets) != 3 || sheets[0] != "Device" || sheets[1] != "Software" || sheets[2] != "Vulnerability" {
			t.Errorf("sheet list = %v, want [Device Software Vulnerability]", sheets)
		}
	})

	t.Run("creates missing output directories", func(t *testing.T) {
		t.Parallel()

		input, _ := writeTestInventory(t)
		output := filepath.Join(t.TempDir(), "reports", "fleet.xlsx")
		if _, err := runCommand(t, "report", "-i", input, "-o", output, "--no-history"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(output); err != nil {
			t.Errorf("workbook not written: %v", err)
		}
	})

	t.Run("markdown summary goes to stdout", func(t *testing.T) {
		t.Parallel()

		input, output := writeTestInventory(t)
		out, err := runCommand(t, "report", "-i", input, "-o", output, "-m", "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "# Fleet Report") {
			t.Errorf("missing markdown summary in output:\n%s", out)
		}
	})

	t.Run("json summary can be written to a file", func(t *testing.T) {
		t.Parallel()

		input, output := writeTestInventory(t)
		summaryPath := filepath.Join(filepath.Dir(output), "summary.json")
		_, err := runCommand(t, "report",
			"-i", input, "-o", output, "-j", "-s", summaryPath, "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(summaryPath) //nolint:gosec // Test-owned path
		if err != nil {
			t.Fatalf("summary not written: %v", err)
		}
		if !bytes.Contains(data, []byte(`"device_count": 2`)) {
			t.Errorf("summary missing device count:\n%s", data)
		}
	})

	t.Run("rejects conflicting summary formats", func(t *testing.T) {
		t.Parallel()

		input, output := writeTestInventory(t)
		_, err := runCommand(t, "report", "-i", input, "-o", output, "-j", "-m", "--no-history")
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("missing input produces no workbook", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "missing.json")
		output := filepath.Join(dir, "fleet.xlsx")

		_, err := runCommand(t, "report", "-i", input, "-o", output, "--no-history")
		if !errors.Is(err, inventory.ErrInputNotFound) {
			t.Fatalf("expected ErrInputNotFound, got %v", err)
		}
		if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
			t.Error("workbook written despite missing input")
		}
	})

	t.Run("schema violation aborts before any output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "response.json")
		output := filepath.Join(dir, "fleet.xlsx")
		// Device entry missing "name".
		broken := strings.Replace(testInventory, `"name": "host1",`, "", 1)
		if err := os.WriteFile(input, []byte(broken), 0600); err != nil {
			t.Fatalf("failed to write test inventory: %v", err)
		}

		_, err := runCommand(t, "report", "-i", input, "-o", output, "--no-history")
		if err == nil || !strings.Contains(err.Error(), `missing field "name"`) {
			t.Fatalf("expected missing-field error, got %v", err)
		}
		if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
			t.Error("workbook written despite schema violation")
		}
	})

	t.Run("flag defaults match the fixed file names", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		if def := cmd.Flags().Lookup("input").DefValue; def != config.DefaultInputFile {
			t.Errorf("input default = %q, want %q", def, config.DefaultInputFile)
		}
		if def := cmd.Flags().Lookup("output").DefValue; def != config.DefaultOutputFile {
			t.Errorf("output default = %q, want %q", def, config.DefaultOutputFile)
		}
	})
}
