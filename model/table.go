package model

import (
	"sort"
	"strings"
)

// RowCount returns the number of distinct row indices present in the table.
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	seen := make(map[int]bool)
	for _, c := range t.Cells {
		seen[c.Row] = true
	}
	return len(seen)
}

// CellAt returns the first cell matching the given row index and column
// label, or nil when no such cell exists. After any write through this
// library at most one cell matches.
func (t *Table) CellAt(row int, label string) *Cell {
	if t == nil {
		return nil
	}
	for _, c := range t.Cells {
		if c.Row == row && c.Label == label {
			return c
		}
	}
	return nil
}

// grid renders the sparse cells into a dense row-major grid of text values,
// along with the sorted row indices. Columns are the union of column indices
// seen anywhere in the table.
func (t *Table) grid() (rows []int, cols []int, values map[int]map[int]string) {
	values = make(map[int]map[int]string)
	rowSeen := make(map[int]bool)
	colSeen := make(map[int]bool)

	for _, c := range t.Cells {
		if !rowSeen[c.Row] {
			rowSeen[c.Row] = true
			rows = append(rows, c.Row)
		}
		if !colSeen[c.Col] {
			colSeen[c.Col] = true
			cols = append(cols, c.Col)
		}
		if values[c.Row] == nil {
			values[c.Row] = make(map[int]string)
		}
		// First cell wins when upstream data has duplicates
		if _, ok := values[c.Row][c.Col]; !ok {
			values[c.Row][c.Col] = c.Text
		}
	}

	sort.Ints(rows)
	sort.Ints(cols)
	return rows, cols, values
}

// ToMarkdown converts the table to markdown format. Row 0 is rendered as the
// header row; missing cells render empty.
func (t *Table) ToMarkdown() string {
	if t == nil || len(t.Cells) == 0 {
		return ""
	}

	rows, cols, values := t.grid()

	var sb strings.Builder

	writeRow := func(row int) {
		for _, col := range cols {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(values[row][col], "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	// Header row
	writeRow(rows[0])

	// Separator
	for range cols {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	// Data rows
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	if t == nil || len(t.Cells) == 0 {
		return ""
	}

	rows, cols, values := t.grid()

	var sb strings.Builder
	for _, row := range rows {
		for j, col := range cols {
			// Escape quotes and wrap in quotes if necessary
			text := values[row][col]
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(cols)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
