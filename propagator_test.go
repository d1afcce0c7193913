package copydown_test

import (
	"strings"
	"testing"

	"github.com/tsawler/copydown"
	"github.com/tsawler/copydown/model"
)

// invoiceDocument builds the canonical upstream shape: one invoice_date field
// and a table with a header row and two data rows.
func invoiceDocument() *model.Document {
	return &model.Document{
		PredictedBoxes: []model.Box{
			&model.Field{
				ID:      "f-1",
				Label:   "invoice_date",
				OCRText: "2024-01-15",
				Score:   0.97,
			},
			&model.Table{
				ID: "t-1",
				Cells: []*model.Cell{
					{ID: "c-0", Row: 0, Col: 1, Label: "item", Text: "Item"},
					{ID: "c-1", Row: 1, Col: 1, Label: "item", Text: "widget"},
					{ID: "c-2", Row: 2, Col: 1, Label: "item", Text: "gadget"},
				},
			},
		},
	}
}

func TestApplyCopiesFieldToDataRows(t *testing.T) {
	doc := invoiceDocument()

	_, warnings := copydown.New().Apply(doc)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %s", copydown.FormatWarnings(warnings))
	}

	table := doc.FindTable()
	for _, row := range []int{1, 2} {
		cell := table.CellAt(row, "line_item_start_date")
		if cell == nil {
			t.Fatalf("row %d has no line_item_start_date cell", row)
		}
		if cell.Text != "2024-01-15" {
			t.Errorf("row %d text = %q, want 2024-01-15", row, cell.Text)
		}
		if cell.Col != 2 {
			t.Errorf("row %d new cell at col %d, want 2", row, cell.Col)
		}
	}
}

func TestApplyLeavesHeaderRowUntouched(t *testing.T) {
	doc := invoiceDocument()
	copydown.New().Apply(doc)

	table := doc.FindTable()
	if cell := table.CellAt(0, "line_item_start_date"); cell != nil {
		t.Errorf("header row gained a cell: %+v", cell)
	}

	var headerCells int
	for _, c := range table.Cells {
		if c.Row == 0 {
			headerCells++
		}
	}
	if headerCells != 1 {
		t.Errorf("header row has %d cells, want the original 1", headerCells)
	}
}

func TestApplyMissingField(t *testing.T) {
	tests := []struct {
		name string
		doc  *model.Document
	}{
		{"field absent", &model.Document{PredictedBoxes: []model.Box{
			&model.Field{Label: "total", OCRText: "100.00"},
		}}},
		{"field empty", &model.Document{PredictedBoxes: []model.Box{
			&model.Field{Label: "invoice_date", OCRText: ""},
		}}},
		{"empty document", model.NewDocument()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(tt.doc.ActiveBoxes())

			result, warnings := copydown.New().Apply(tt.doc)

			if result != tt.doc {
				t.Error("Apply() returned a different document")
			}
			if tt.doc.FindTable() != nil {
				t.Error("Apply() created a table despite the missing field")
			}
			if len(tt.doc.ActiveBoxes()) != before {
				t.Error("Apply() modified the box list")
			}
			if len(warnings) != 1 || warnings[0].Code != copydown.WarningMissingField {
				t.Errorf("warnings = %s, want one missing-field warning",
					copydown.FormatWarnings(warnings))
			}
		})
	}
}

func TestApplyCreatesTableExactlyOnce(t *testing.T) {
	doc := &model.Document{PredictedBoxes: []model.Box{
		&model.Field{Label: "invoice_date", OCRText: "2024-01-15"},
	}}

	copydown.New().Apply(doc)

	var tableCount int
	for _, b := range doc.ActiveBoxes() {
		if _, ok := b.(*model.Table); ok {
			tableCount++
		}
	}
	if tableCount != 1 {
		t.Fatalf("document has %d tables, want exactly 1", tableCount)
	}
	// A synthesized table has no rows, so nothing gets written
	if cells := doc.FindTable().Cells; len(cells) != 0 {
		t.Errorf("synthesized table has %d cells, want 0", len(cells))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	doc := invoiceDocument()

	prop := copydown.New()
	prop.Apply(doc)
	cellsAfterFirst := len(doc.FindTable().Cells)

	prop.Apply(doc)
	prop.Apply(doc)

	table := doc.FindTable()
	if len(table.Cells) != cellsAfterFirst {
		t.Errorf("repeated Apply() grew the table: %d cells, want %d",
			len(table.Cells), cellsAfterFirst)
	}

	// At most one cell per (row, label) pair
	type position struct {
		row   int
		label string
	}
	seen := make(map[position]int)
	for _, c := range table.Cells {
		seen[position{c.Row, c.Label}]++
	}
	for pos, n := range seen {
		if n > 1 {
			t.Errorf("duplicate cells for row %d label %q: %d", pos.row, pos.label, n)
		}
	}
}

func TestApplyUpdatesExistingTargetCells(t *testing.T) {
	doc := invoiceDocument()
	table := doc.FindTable()
	existing := &model.Cell{ID: "c-old", Row: 1, Col: 2, Label: "line_item_start_date", Text: "1999-01-01"}
	table.Cells = append(table.Cells, existing)

	copydown.New().Apply(doc)

	if existing.Text != "2024-01-15" {
		t.Errorf("existing cell text = %q, want overwritten value", existing.Text)
	}
	if existing.ID != "c-old" {
		t.Error("existing cell was replaced instead of updated")
	}
}

func TestApplyAllBatchIsolation(t *testing.T) {
	// Document A has a nil cell record: grouping its rows fails partway
	malformed := &model.Document{
		PredictedBoxes: []model.Box{
			&model.Field{Label: "invoice_date", OCRText: "2024-02-02"},
			&model.Table{ID: "t-bad", Cells: []*model.Cell{nil}},
		},
	}
	valid := invoiceDocument()

	docs, warnings := copydown.New().ApplyAll([]*model.Document{malformed, valid})

	if len(docs) != 2 || docs[0] != malformed || docs[1] != valid {
		t.Fatal("ApplyAll() did not return the same documents")
	}

	// B is fully updated despite A's failure
	for _, row := range []int{1, 2} {
		cell := valid.FindTable().CellAt(row, "line_item_start_date")
		if cell == nil || cell.Text != "2024-01-15" {
			t.Errorf("valid document row %d not updated after malformed document", row)
		}
	}

	var docErrors int
	for _, w := range warnings {
		if w.Code == copydown.WarningDocumentError {
			docErrors++
			if w.Document != 0 {
				t.Errorf("document error attributed to index %d, want 0", w.Document)
			}
		}
	}
	if docErrors != 1 {
		t.Errorf("got %d document-error warnings, want 1: %s",
			docErrors, copydown.FormatWarnings(warnings))
	}
}

func TestConfigurationReturnsNewInstances(t *testing.T) {
	base := copydown.New()
	custom := base.Field("due_date").Column("line_item_due_date")

	doc := &model.Document{
		PredictedBoxes: []model.Box{
			&model.Field{Label: "due_date", OCRText: "2024-03-01"},
			&model.Table{ID: "t-1", Cells: []*model.Cell{
				{Row: 1, Col: 1, Label: "item", Text: "widget"},
			}},
		},
	}

	custom.Apply(doc)

	cell := doc.FindTable().CellAt(1, "line_item_due_date")
	if cell == nil || cell.Text != "2024-03-01" {
		t.Fatalf("custom field/column propagation failed: %+v", cell)
	}

	// The base still uses the defaults, so it reports the field as missing
	_, warnings := base.Apply(doc)
	if len(warnings) != 1 || warnings[0].Code != copydown.WarningMissingField {
		t.Errorf("base propagator was mutated by configuration: %s",
			copydown.FormatWarnings(warnings))
	}
}

func TestProcess(t *testing.T) {
	docs := []*model.Document{invoiceDocument(), invoiceDocument()}

	got := copydown.Process(docs)

	if len(got) != 2 {
		t.Fatalf("Process() returned %d documents, want 2", len(got))
	}
	for i, doc := range got {
		if doc != docs[i] {
			t.Errorf("document %d is not the input document", i)
		}
		if cell := doc.FindTable().CellAt(1, "line_item_start_date"); cell == nil {
			t.Errorf("document %d not updated", i)
		}
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []copydown.Warning{
		{Code: copydown.WarningMissingField, Message: `field "invoice_date" not found`, Document: 0},
		{Code: copydown.WarningDocumentError, Message: "boom", Document: 2},
	}

	got := copydown.FormatWarnings(warnings)
	if !strings.Contains(got, "document 0") || !strings.Contains(got, "missing field") {
		t.Errorf("FormatWarnings() = %q", got)
	}
	if !strings.Contains(got, "document 2") || !strings.Contains(got, "boom") {
		t.Errorf("FormatWarnings() = %q", got)
	}

	if got := copydown.FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}
}
