package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/fleetsheet/fleetsheet/internal/model"
)

// Sheet names, in workbook order.
const (
	SheetDevice        = "Device"
	SheetSoftware      = "Software"
	SheetVulnerability = "Vulnerability"
)

// Layout constants for column and row auto-sizing.
// Widths are in Excel column-width units (approximate character cells),
// heights in points.
const (
	// maxColumnWidth caps every computed column width so one oversized
	// value (a long CVE list, a long URL) cannot stretch a column
	// across the whole screen.
	maxColumnWidth = 100.0

	// columnPadding and columnScale turn the longest cell length into a
	// display width: (length + padding) * scale.
	columnPadding = 2
	columnScale   = 1.2

	// lineHeight is the per-line row height used for cells holding
	// embedded newlines.
	lineHeight = 15.0
)

// Column headers per sheet. The grouped sheets lead with the shared
// device column.
var (
	deviceHeaders = []string{
		"Name", "FQDN", "IP Addresses", "MAC Addresses", "Owner", "OS Name", "OS Version",
	}
	softwareHeaders = []string{
		"Device", "Name", "Version", "Vendor",
	}
	vulnerabilityHeaders = []string{
		"Device", "Kaspersky ID", "Product Name", "Severity", "Severity Level",
		"CVE IDs", "Exploit Exists", "Malware Exists",
		"Recommended Major Patch", "Recommended Minor Patch", "Description URL",
	}
)

// ExcelWriter renders the fleet as a three-sheet xlsx workbook.
//
// The workbook contains exactly the sheets Device, Software and
// Vulnerability, in that order, with no default blank sheet. The Device
// sheet holds one row per device; the other two group their rows per
// device, merging the device-name column across each multi-row group.
type ExcelWriter struct {
	baseWriter
}

// NewExcelWriter creates an ExcelWriter that streams the finished
// workbook to the given writer.
func NewExcelWriter(output io.Writer) *ExcelWriter {
	return &ExcelWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the fleet and writes the workbook bytes to the output.
func (w *ExcelWriter) Write(fleet model.Fleet) (int, error) {
	f, err := renderWorkbook(fleet)
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // In-memory workbook, nothing to flush

	n, err := f.WriteTo(w.output)
	if err != nil {
		return int(n), fmt.Errorf("failed to write workbook: %w", err)
	}
	return int(n), nil
}

// renderWorkbook builds the in-memory workbook for the fleet.
func renderWorkbook(fleet model.Fleet) (*excelize.File, error) {
	f := excelize.NewFile()

	// Reuse the default sheet as the Device sheet so the workbook never
	// contains a blank "Sheet1".
	if err := f.SetSheetName(f.GetSheetName(0), SheetDevice); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetSoftware, SheetVulnerability} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}

	device := newSheetWriter(f, SheetDevice, styles)
	if err := device.writeHeader(deviceHeaders); err != nil {
		return nil, err
	}
	if err := writeDeviceSheet(device, fleet); err != nil {
		return nil, err
	}

	software := newSheetWriter(f, SheetSoftware, styles)
	if err := software.writeHeader(softwareHeaders); err != nil {
		return nil, err
	}
	if err := software.writeGroups(len(softwareHeaders), DeviceGroups(fleet, SoftwareRows)); err != nil {
		return nil, err
	}

	vulns := newSheetWriter(f, SheetVulnerability, styles)
	if err := vulns.writeHeader(vulnerabilityHeaders); err != nil {
		return nil, err
	}
	if err := vulns.writeGroups(len(vulnerabilityHeaders), DeviceGroups(fleet, VulnerabilityRows)); err != nil {
		return nil, err
	}

	for _, s := range []*sheetWriter{device, software, vulns} {
		if err := s.autosize(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// writeDeviceSheet writes one row per device, in fleet order.
func writeDeviceSheet(s *sheetWriter, fleet model.Fleet) error {
	for i, device := range fleet {
		row := i + 2 // row 1 is the header
		values := []string{
			device.Name,
			joinList(device.FQDNs),
			joinList(device.IPAddresses),
			joinList(device.MACAddresses),
			device.Owner,
			device.OS.Name,
			device.OS.Version,
		}
		if err := s.writeRow(row, len(deviceHeaders), values); err != nil {
			return err
		}
	}
	return nil
}

// workbookStyles holds the shared cell styles for all three sheets.
type workbookStyles struct {
	// header is bold, centered both ways, word-wrapped, thin-bordered.
	header int

	// cell is word-wrapped, anchored top-left, thin-bordered. Applied to
	// every data cell, blank and merged cells included.
	cell int
}

// newWorkbookStyles registers the shared styles with the workbook.
func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return workbookStyles{}, err
	}

	cell, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return workbookStyles{}, err
	}

	return workbookStyles{header: header, cell: cell}, nil
}

// sheetWriter writes one sheet while tracking the measurements needed
// for column and row auto-sizing afterwards.
type sheetWriter struct {
	file   *excelize.File
	sheet  string
	styles workbookStyles

	// colLens tracks the longest non-empty cell value per column, in
	// runes, header included.
	colLens []int

	// rowLines tracks rows whose cells hold embedded newlines, mapping
	// row number to the largest newline-separated line count.
	rowLines map[int]int
}

// newSheetWriter creates a sheetWriter for an existing sheet.
func newSheetWriter(f *excelize.File, sheet string, styles workbookStyles) *sheetWriter {
	return &sheetWriter{
		file:     f,
		sheet:    sheet,
		styles:   styles,
		rowLines: make(map[int]int),
	}
}

// writeHeader writes the header row with the header style.
func (s *sheetWriter) writeHeader(headers []string) error {
	for i, h := range headers {
		if err := s.setCell(i+1, 1, h); err != nil {
			return err
		}
	}
	return s.styleRow(1, len(headers), s.styles.header)
}

// writeRow writes a flat data row and styles all width columns,
// bordering blank cells the same as populated ones.
func (s *sheetWriter) writeRow(row, width int, values []string) error {
	for i, v := range values {
		if v == "" {
			continue
		}
		if err := s.setCell(i+1, row, v); err != nil {
			return err
		}
	}
	return s.styleRow(row, width, s.styles.cell)
}

// writeGroups writes the grouped rows for the Software and Vulnerability
// sheets. The device label lands only in the first row of each group;
// groups spanning more than one row get their label cells merged into a
// single visual cell.
func (s *sheetWriter) writeGroups(width int, groups []RowGroup) error {
	row := 2 // row 1 is the header
	for _, g := range groups {
		start := row

		if len(g.Rows) == 0 {
			// A device with no items still consumes exactly one row:
			// the label in column 1, everything else blank but bordered.
			if err := s.writeRow(row, width, []string{g.Label}); err != nil {
				return err
			}
			row++
			continue
		}

		for i, items := range g.Rows {
			values := make([]string, 0, width)
			if i == 0 {
				values = append(values, g.Label)
			} else {
				values = append(values, "")
			}
			values = append(values, items...)
			if err := s.writeRow(row, width, values); err != nil {
				return err
			}
			row++
		}

		if span := row - start; span > 1 {
			topLeft, err := excelize.CoordinatesToCellName(1, start)
			if err != nil {
				return err
			}
			bottomLeft, err := excelize.CoordinatesToCellName(1, row-1)
			if err != nil {
				return err
			}
			if err := s.file.MergeCell(s.sheet, topLeft, bottomLeft); err != nil {
				return err
			}
		}
	}
	return nil
}

// setCell writes one cell value and records its measurements.
func (s *sheetWriter) setCell(col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := s.file.SetCellValue(s.sheet, cell, value); err != nil {
		return err
	}
	s.measure(col, row, value)
	return nil
}

// measure records the cell's rune length and embedded line count.
// Empty cells do not contribute to column widths.
func (s *sheetWriter) measure(col, row int, value string) {
	if value == "" {
		return
	}
	for len(s.colLens) < col {
		s.colLens = append(s.colLens, 0)
	}
	if n := utf8.RuneCountInString(value); n > s.colLens[col-1] {
		s.colLens[col-1] = n
	}
	if strings.Contains(value, "\n") {
		lines := strings.Count(value, "\n") + 1
		if lines > s.rowLines[row] {
			s.rowLines[row] = lines
		}
	}
}

// styleRow applies a style to columns 1..width of a row.
func (s *sheetWriter) styleRow(row, width, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	return s.file.SetCellStyle(s.sheet, start, end, style)
}

// autosize applies the recorded measurements: every column gets
// min((maxLen+2)*1.2, 100); every row holding n embedded lines gets
// height 15*n.
func (s *sheetWriter) autosize() error {
	for i, maxLen := range s.colLens {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(maxLen+columnPadding) * columnScale
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := s.file.SetColWidth(s.sheet, name, name, width); err != nil {
			return err
		}
	}
	for row, lines := range s.rowLines {
		if err := s.file.SetRowHeight(s.sheet, row, lineHeight*float64(lines)); err != nil {
			return err
		}
	}
	return nil
}
