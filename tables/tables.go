package tables

import (
	"github.com/tsawler/copydown/idgen"
	"github.com/tsawler/copydown/model"
)

// Ensure returns the document's table box, synthesizing one when none exists.
// A synthesized table has zero geometry, the placeholder label "table", an
// empty cell sequence, and an accepted status; it is appended to the
// document's authoritative box list.
//
// Ensure is idempotent within one document state: repeated calls return the
// same table because the scan always runs before any creation.
func Ensure(doc *model.Document, ids *idgen.Generator) *model.Table {
	if t := doc.FindTable(); t != nil {
		return t
	}

	t := &model.Table{
		ID:      ids.TableID(),
		Label:   "table",
		OCRText: "table",
		Score:   1.0,
		Status:  model.StatusCorrectlyPredicted,
		Cells:   make([]*model.Cell, 0),
	}
	doc.AppendBox(t)
	return t
}

// GroupByRow partitions a table's cells by row index, preserving first-seen
// order within each row. Rows with no cells are absent from the mapping.
// A nil table yields an empty mapping.
func GroupByRow(t *model.Table) map[int][]*model.Cell {
	rows := make(map[int][]*model.Cell)
	if t == nil {
		return rows
	}
	for _, c := range t.Cells {
		rows[c.Row] = append(rows[c.Row], c)
	}
	return rows
}

// SetCellValue ensures a cell with the given row index and column label
// exists in the document's table and holds value. An existing (row, label)
// cell is updated in place; otherwise a new cell is appended in the next free
// column of the row.
func SetCellValue(doc *model.Document, ids *idgen.Generator, row int, label, value string) {
	t := Ensure(doc, ids)

	for _, c := range t.Cells {
		if c.Row == row && c.Label == label {
			c.Text = value
			return
		}
	}

	t.Cells = append(t.Cells, &model.Cell{
		ID:                 ids.CellID(label, row),
		Row:                row,
		Col:                NextColumn(t, row),
		Label:              label,
		Text:               value,
		Score:              1.0,
		VerificationStatus: model.StatusCorrectlyPredicted,
	})
}

// NextColumn returns the column index a new cell in the given row should
// occupy: one past the highest existing column index in that row, or 1 when
// the row has no cells.
func NextColumn(t *model.Table, row int) int {
	maxCol := 0
	for _, c := range t.Cells {
		if c.Row == row && c.Col > maxCol {
			maxCol = c.Col
		}
	}
	return maxCol + 1
}
