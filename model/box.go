package model

import "encoding/json"

// BoxType represents the kind of detected box.
type BoxType int

const (
	BoxTypeUnknown BoxType = iota
	BoxTypeField
	BoxTypeTable
)

func (bt BoxType) String() string {
	switch bt {
	case BoxTypeField:
		return "Field"
	case BoxTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Review status values attached to boxes and cells by the upstream pipeline.
const (
	StatusCorrectlyPredicted = "correctly_predicted"
)

// Box is the interface for all detected boxes.
type Box interface {
	Type() BoxType
	BoundingBox() BBox
}

// TextBox is an interface for boxes carrying recognized text.
type TextBox interface {
	Box
	GetText() string
}

// Field represents a single extracted named value.
type Field struct {
	ID      string
	Label   string // Semantic name, e.g. "invoice_date"
	OCRText string // Recognized value
	BBox    BBox
	Score   float64 // Detection confidence (0-1)
	Status  string
}

func (f *Field) Type() BoxType     { return BoxTypeField }
func (f *Field) BoundingBox() BBox { return f.BBox }
func (f *Field) GetText() string   { return f.OCRText }

// Table represents a detected table owning a sparse sequence of cells.
// Cell order is the order the upstream pipeline emitted them; appended cells
// go to the end.
type Table struct {
	ID      string
	Label   string
	OCRText string
	BBox    BBox
	Score   float64
	Status  string
	Cells   []*Cell
}

func (t *Table) Type() BoxType     { return BoxTypeTable }
func (t *Table) BoundingBox() BBox { return t.BBox }

// Cell represents one table cell: position, semantic column label, text value,
// and the review metadata carried through from the upstream pipeline.
type Cell struct {
	ID                 string
	Row                int // Row index; row 0 is the header row
	Col                int // Column index
	RowSpan            int
	ColSpan            int
	Label              string // Semantic column name
	Text               string
	BBox               BBox
	Score              float64
	RowLabel           string
	VerificationStatus string
	Status             string
	FailedValidation   string
	LabelID            string
	LookupEdited       bool
}

// Generic represents a box of a kind this library does not operate on.
// The original record is preserved so it survives a decode/encode round trip.
type Generic struct {
	ID    string
	Kind  string // Raw type discriminant from the wire format
	Label string
	BBox  BBox
	Raw   json.RawMessage
}

func (g *Generic) Type() BoxType     { return BoxTypeUnknown }
func (g *Generic) BoundingBox() BBox { return g.BBox }
