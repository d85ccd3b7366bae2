package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/fleetsheet/fleetsheet/internal/model"
)

// dbFileName is the history database file name inside the data directory.
const dbFileName = "fleetsheet.db"

// RunDB stores one record per report run in a SQLite database.
type RunDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Run is one recorded report run.
type Run struct {
	// ID is the database row identifier.
	ID int64

	// Timestamp is when the run was recorded.
	Timestamp time.Time

	// InputPath and OutputPath are the files the run read and wrote.
	InputPath  string
	OutputPath string

	// DeviceCount, SoftwareCount and VulnerabilityCount are the fleet's
	// aggregate counts at the time of the run.
	DeviceCount        int
	SoftwareCount      int
	VulnerabilityCount int

	// ExploitableCount is the number of findings with a known exploit.
	ExploitableCount int
}

// NewRun builds a Run record from a fleet summary.
func NewRun(inputPath, outputPath string, summary *model.FleetSummary) *Run {
	return &Run{
		InputPath:          inputPath,
		OutputPath:         outputPath,
		DeviceCount:        summary.DeviceCount,
		SoftwareCount:      summary.SoftwareCount,
		VulnerabilityCount: summary.VulnerabilityCount,
		ExploitableCount:   summary.ExploitableCount,
	}
}

// Open opens or creates a RunDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*RunDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *RunDB) createTables() error {
	schema := `
	-- Runs store one row per generated report
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		device_count INTEGER NOT NULL,
		software_count INTEGER NOT NULL,
		vulnerability_count INTEGER NOT NULL,
		exploitable_count INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun inserts a run record and returns its row ID.
func (rdb *RunDB) SaveRun(ctx context.Context, run *Run) (int64, error) {
	query := `
	INSERT INTO runs (input_path, output_path, device_count, software_count, vulnerability_count, exploitable_count)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := rdb.db.ExecContext(ctx, query,
		run.InputPath,
		run.OutputPath,
		run.DeviceCount,
		run.SoftwareCount,
		run.VulnerabilityCount,
		run.ExploitableCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run record: %w", err)
	}
	return result.LastInsertId()
}

// ListRuns returns the most recent runs, newest first, up to limit.
// A limit of 0 or less returns all runs.
func (rdb *RunDB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
	SELECT id, timestamp, input_path, output_path, device_count, software_count, vulnerability_count, exploitable_count
	FROM runs
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	var runs []Run
	for rows.Next() {
		var run Run
		var timestamp string
		if err := rows.Scan(
			&run.ID,
			&timestamp,
			&run.InputPath,
			&run.OutputPath,
			&run.DeviceCount,
			&run.SoftwareCount,
			&run.VulnerabilityCount,
			&run.ExploitableCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}
		run.Timestamp = parseTimestamp(timestamp)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// timestampFormats are the layouts SQLite may use for DATETIME columns,
// depending on how the value was written.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05.999999999-07:00",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
