// Package logging provides run report generation for processed media files.
// This file contains reusable table formatting infrastructure for aligned
// text tables written into the report.

package logging

import (
	"fmt"
	"strings"
)

// Row is a single data row. Values are pre-formatted strings so callers can
// mix decimals, durations and counts in one table.
type Row struct {
	Label  string
	Values []string
}

// Table formats aligned columns for the report. Labels are left-aligned,
// values right-aligned within their column.
type Table struct {
	Headers []string
	Rows    []Row
}

// NewTable creates a Table with the given value column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Rows:    make([]Row, 0),
	}
}

// AddRow appends a row with pre-formatted values. Missing values display
// as "-".
func (t *Table) AddRow(label string, values ...string) {
	t.Rows = append(t.Rows, Row{Label: label, Values: values})
}

// String renders the table with aligned columns.
func (t *Table) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	// Value column widths start at the header width
	valueWidths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		valueWidths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, val := range row.Values {
			if i < len(valueWidths) && len(val) > valueWidths[i] {
				valueWidths[i] = len(val)
			}
		}
	}

	var sb strings.Builder

	// Header row
	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for i, header := range t.Headers {
		sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], header))
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  ", labelWidth, row.Label))
		for i := 0; i < len(t.Headers); i++ {
			val := "-"
			if i < len(row.Values) && row.Values[i] != "" {
				val = row.Values[i]
			}
			sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], val))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
