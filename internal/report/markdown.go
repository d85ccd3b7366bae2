package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/fleetsheet/fleetsheet/internal/model"
)

// MarkdownWriter outputs a fleet summary in Markdown format.
// This format is designed for documentation and sharing; it complements
// the workbook rather than reproducing it, so it carries aggregate
// tables instead of per-item rows.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the fleet summary in Markdown format.
func (w *MarkdownWriter) Write(fleet model.Fleet) (int, error) {
	summary := model.NewFleetSummary(fleet)
	md := markdown.NewMarkdown(w.output)

	md.H1("Fleet Report")
	md.PlainText("")

	w.writeOverview(md, summary)
	w.writeSeverity(md, summary)
	w.writeDevices(md, fleet)

	return len(md.String()), md.Build()
}

// writeOverview writes the aggregate counts table.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, summary *model.FleetSummary) {
	md.H2("Overview")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Devices", strconv.Itoa(summary.DeviceCount)},
			{"Installed software", strconv.Itoa(summary.SoftwareCount)},
			{"Vulnerabilities", strconv.Itoa(summary.VulnerabilityCount)},
			{"With known exploit", strconv.Itoa(summary.ExploitableCount)},
			{"With known malware", strconv.Itoa(summary.MalwareCount)},
		},
	})
	md.PlainText("")
}

// writeSeverity writes the per-label severity table and an alert sized
// to the worst findings present.
func (w *MarkdownWriter) writeSeverity(md *markdown.Markdown, summary *model.FleetSummary) {
	md.H2("Severity Summary")
	md.PlainText("")

	if !summary.HasVulnerabilities() {
		md.Tip("No vulnerabilities reported for this fleet.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(summary.SeverityCounts))
	for _, label := range summary.SeverityLabels() {
		rows = append(rows, []string{label, strconv.Itoa(summary.SeverityCounts[label])})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	switch {
	case summary.ExploitableCount > 0:
		md.Cautionf(
			"%d vulnerability finding(s) have a known public exploit and require immediate attention.",
			summary.ExploitableCount,
		)
	case summary.MalwareCount > 0:
		md.Warningf(
			"%d vulnerability finding(s) are abused by known malware.",
			summary.MalwareCount,
		)
	default:
		md.Notef(
			"%d vulnerability finding(s) reported; no known exploits or malware.",
			summary.VulnerabilityCount,
		)
	}
	md.PlainText("")
}

// writeDevices writes the per-device table, in input order.
func (w *MarkdownWriter) writeDevices(md *markdown.Markdown, fleet model.Fleet) {
	md.H2("Devices")
	md.PlainText("")

	if len(fleet) == 0 {
		md.PlainText("No devices in the inventory.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(fleet))
	for _, device := range fleet {
		rows = append(rows, []string{
			device.Name,
			device.Owner,
			device.OS.Name + " " + device.OS.Version,
			strconv.Itoa(len(device.Software)),
			strconv.Itoa(len(device.Vulnerabilities)),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Device", "Owner", "OS", "Software", "Vulnerabilities"},
		Rows:   rows,
	})
	md.PlainText("")
}
