// Package report renders a decoded fleet as output documents.
//
// This package contains writers for different output formats:
//   - ExcelWriter: The three-sheet workbook (Device, Software, Vulnerability)
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: A fleet summary for documentation and sharing
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed via MultiWriter for multi-format output.
//
// The grouped sheets (Software, Vulnerability) are built from RowGroup
// values: a row-group is a contiguous run of rows owned by one device,
// displaying the device name once across the whole run. Modeling the
// span explicitly keeps the grouping logic independent of the workbook
// format; ExcelWriter realizes a span as a merged cell, while other
// writers are free to repeat or suppress the label instead.
package report
