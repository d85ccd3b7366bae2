package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/fleetsheet/fleetsheet/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a fleet in a particular format.
//
// Design decision: We use an interface so the different output formats
// (workbook, JSON, Markdown) share one API; the command layer can write
// to files, stdout, or both without knowing the format. Write reports
// bytes written, mirroring io.Writer conventions.
type Writer interface {
	// Write renders the fleet to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(fleet model.Fleet) (int, error)
}

// MultiWriter writes the same fleet through multiple Writers.
// This is useful for producing the workbook and a summary in one run.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the fleet through all configured Writers.
// Returns the total bytes written. Stops on the first error encountered.
func (m *MultiWriter) Write(fleet model.Fleet) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(fleet)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the common output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// RowGroup is a contiguous run of output rows owned by one device.
// Label is shown once for the whole run. Rows holds the per-item column
// values, excluding the label column; an empty Rows still occupies one
// physical row, displaying only the label.
type RowGroup struct {
	// Label is the device name shared by every row in the group.
	Label string

	// Rows holds one entry per item, in input order.
	Rows [][]string
}

// Span returns the number of physical rows the group occupies.
// A group with no items still consumes exactly one row.
func (g RowGroup) Span() int {
	if len(g.Rows) == 0 {
		return 1
	}
	return len(g.Rows)
}

// DeviceGroups builds one RowGroup per device, in fleet order, using
// project to produce each device's item rows. Groups belonging to
// different devices are never merged: a device with zero items still
// yields its own single-row group.
func DeviceGroups(fleet model.Fleet, project func(model.Device) [][]string) []RowGroup {
	groups := make([]RowGroup, 0, len(fleet))
	for _, device := range fleet {
		groups = append(groups, RowGroup{
			Label: device.Name,
			Rows:  project(device),
		})
	}
	return groups
}

// SoftwareRows projects a device's installed software into item rows
// for the Software sheet: name, version, vendor.
func SoftwareRows(device model.Device) [][]string {
	rows := make([][]string, 0, len(device.Software))
	for _, sw := range device.Software {
		rows = append(rows, []string{sw.Name, sw.Version, sw.Vendor})
	}
	return rows
}

// VulnerabilityRows projects a device's vulnerabilities into item rows
// for the Vulnerability sheet. Every scalar is written verbatim; the CVE
// list is joined with ", " and booleans render as "Yes"/"No".
func VulnerabilityRows(device model.Device) [][]string {
	rows := make([][]string, 0, len(device.Vulnerabilities))
	for _, vuln := range device.Vulnerabilities {
		rows = append(rows, []string{
			vuln.KasperskyID,
			vuln.ProductName,
			strconv.Itoa(vuln.SeverityScore),
			vuln.SeverityLabel,
			joinList(vuln.CVEIDs),
			yesNo(vuln.ExploitExists),
			yesNo(vuln.MalwareExists),
			vuln.RecommendedMajorPatch,
			vuln.RecommendedMinorPatch,
			vuln.DescriptionURL,
		})
	}
	return rows
}

// joinList joins list values with the report separator.
func joinList(values []string) string {
	return strings.Join(values, ", ")
}

// yesNo renders a boolean the way the report displays it.
func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
