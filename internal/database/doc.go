// Package database provides SQLite-based storage for the run history.
//
// Every successful report run can record one row: when it ran, which
// files it read and wrote, and the fleet's aggregate counts. The
// history exists so operators can see how a fleet's vulnerability
// exposure moves between inventory exports without keeping the old
// workbooks around. It never feeds back into report generation, and a
// run that cannot open the database still produces its report.
package database
