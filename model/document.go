package model

import "golang.org/x/text/unicode/norm"

// Document represents a single processed document with its detected boxes.
// ModeratedBoxes holds human-reviewed results, PredictedBoxes the raw model
// output. Moderated takes precedence whenever it is non-empty.
type Document struct {
	ModeratedBoxes []Box
	PredictedBoxes []Box
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{}
}

// ActiveBoxes returns the authoritative box list: moderated when present and
// non-empty, otherwise predicted. The returned slice is the document's own;
// callers must not assume it is a copy.
func (d *Document) ActiveBoxes() []Box {
	if len(d.ModeratedBoxes) > 0 {
		return d.ModeratedBoxes
	}
	return d.PredictedBoxes
}

// AppendBox appends a box to the authoritative list, creating it if
// necessary. The box lands on the moderated list only when that list is
// already non-empty; otherwise it goes to the predicted list.
func (d *Document) AppendBox(b Box) {
	if len(d.ModeratedBoxes) > 0 {
		d.ModeratedBoxes = append(d.ModeratedBoxes, b)
		return
	}
	d.PredictedBoxes = append(d.PredictedBoxes, b)
}

// FieldValue returns the recognized text of the first field box with the
// given label, NFC-normalized. The empty string means "not found"; callers
// treat it as a soft failure rather than an error.
func (d *Document) FieldValue(label string) string {
	for _, b := range d.ActiveBoxes() {
		if f, ok := b.(*Field); ok && f.Label == label {
			return norm.NFC.String(f.OCRText)
		}
	}
	return ""
}

// FindTable returns the first table box in the authoritative list, or nil
// when the document has none. Later table boxes, if any, are ignored.
func (d *Document) FindTable() *Table {
	for _, b := range d.ActiveBoxes() {
		if t, ok := b.(*Table); ok {
			return t
		}
	}
	return nil
}

// Fields returns all field boxes in the authoritative list.
func (d *Document) Fields() []*Field {
	var fields []*Field
	for _, b := range d.ActiveBoxes() {
		if f, ok := b.(*Field); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
