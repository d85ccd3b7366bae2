package database

import (
	"context"
	"testing"

	"github.com/fleetsheet/fleetsheet/internal/model"
)

// openTestDB opens a RunDB in a temporary directory.
func openTestDB(t *testing.T) *RunDB {
	t.Helper()

	rdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRunDBSaveAndList(t *testing.T) {
	t.Parallel()

	rdb := openTestDB(t)
	ctx := context.Background()

	summary := &model.FleetSummary{
		DeviceCount:        3,
		SoftwareCount:      12,
		VulnerabilityCount: 5,
		ExploitableCount:   1,
	}

	id, err := rdb.SaveRun(ctx, NewRun("response.json", "devices_grouped_rows.xlsx", summary))
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id <= 0 {
		t.Errorf("id = %d, want > 0", id)
	}

	runs, err := rdb.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	run := runs[0]
	if run.InputPath != "response.json" || run.OutputPath != "devices_grouped_rows.xlsx" {
		t.Errorf("paths = %q, %q", run.InputPath, run.OutputPath)
	}
	if run.DeviceCount != 3 || run.VulnerabilityCount != 5 || run.ExploitableCount != 1 {
		t.Errorf("counts = %+v, want 3 devices, 5 vulnerabilities, 1 exploitable", run)
	}
	if run.Timestamp.IsZero() {
		t.Error("Timestamp is zero, want database default")
	}
}

func TestRunDBListLimit(t *testing.T) {
	t.Parallel()

	rdb := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		summary := &model.FleetSummary{DeviceCount: i}
		if _, err := rdb.SaveRun(ctx, NewRun("in.json", "out.xlsx", summary)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := rdb.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	// Newest first: the last insert had DeviceCount 4.
	if runs[0].DeviceCount != 4 {
		t.Errorf("newest run DeviceCount = %d, want 4", runs[0].DeviceCount)
	}
}

func TestRunDBOpenWithoutCreate(t *testing.T) {
	t.Parallel()

	opts := Options{CreateIfNotExists: false, EnableWAL: false}
	if _, err := Open(t.TempDir(), opts); err == nil {
		t.Error("expected error opening a missing database, got nil")
	}
}
