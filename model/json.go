package model

import "encoding/json"

// Wire discriminant values used by the upstream pipeline.
const (
	wireTypeField = "field"
	wireTypeTable = "table"
)

// boxJSON is the wire shape shared by field and table boxes.
type boxJSON struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Label   string  `json:"label"`
	XMin    float64 `json:"xmin"`
	YMin    float64 `json:"ymin"`
	XMax    float64 `json:"xmax"`
	YMax    float64 `json:"ymax"`
	Score   float64 `json:"score"`
	OCRText string  `json:"ocr_text"`
	Status  string  `json:"status"`
}

// tableJSON adds the cell sequence; tables always carry a cells key,
// even when empty.
type tableJSON struct {
	boxJSON
	Cells []cellJSON `json:"cells"`
}

// cellJSON is the wire shape of a table cell.
type cellJSON struct {
	ID                 string  `json:"id"`
	Row                int     `json:"row"`
	Col                int     `json:"col"`
	RowSpan            int     `json:"row_span"`
	ColSpan            int     `json:"col_span"`
	Label              string  `json:"label"`
	XMin               float64 `json:"xmin"`
	YMin               float64 `json:"ymin"`
	XMax               float64 `json:"xmax"`
	YMax               float64 `json:"ymax"`
	Score              float64 `json:"score"`
	Text               string  `json:"text"`
	RowLabel           string  `json:"row_label"`
	VerificationStatus string  `json:"verification_status"`
	Status             string  `json:"status"`
	FailedValidation   string  `json:"failed_validation"`
	LabelID            string  `json:"label_id"`
	LookupEdited       bool    `json:"lookup_edited"`
}

// documentJSON is the wire shape of a document record.
type documentJSON struct {
	ModeratedBoxes []json.RawMessage `json:"moderated_boxes,omitempty"`
	PredictedBoxes []json.RawMessage `json:"predicted_boxes,omitempty"`
}

// UnmarshalJSON decodes the upstream wire shape into typed boxes. Records
// with an unrecognized or missing "type" key become [Generic] boxes with the
// original bytes preserved.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.ModeratedBoxes = decodeBoxes(raw.ModeratedBoxes)
	d.PredictedBoxes = decodeBoxes(raw.PredictedBoxes)
	return nil
}

// MarshalJSON encodes the document back into the upstream wire shape.
// Generic boxes are written byte-for-byte as they were received.
func (d *Document) MarshalJSON() ([]byte, error) {
	raw := documentJSON{}

	var err error
	if raw.ModeratedBoxes, err = encodeBoxes(d.ModeratedBoxes); err != nil {
		return nil, err
	}
	if raw.PredictedBoxes, err = encodeBoxes(d.PredictedBoxes); err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

func decodeBoxes(records []json.RawMessage) []Box {
	if records == nil {
		return nil
	}

	boxes := make([]Box, 0, len(records))
	for _, rec := range records {
		var bj boxJSON
		if err := json.Unmarshal(rec, &bj); err != nil {
			// Structurally unusable record: carry it through untouched
			boxes = append(boxes, &Generic{Raw: append(json.RawMessage(nil), rec...)})
			continue
		}

		bbox := BBox{XMin: bj.XMin, YMin: bj.YMin, XMax: bj.XMax, YMax: bj.YMax}

		switch bj.Type {
		case wireTypeField:
			boxes = append(boxes, &Field{
				ID:      bj.ID,
				Label:   bj.Label,
				OCRText: bj.OCRText,
				BBox:    bbox,
				Score:   bj.Score,
				Status:  bj.Status,
			})
		case wireTypeTable:
			var tj tableJSON
			if err := json.Unmarshal(rec, &tj); err != nil {
				boxes = append(boxes, &Generic{Raw: append(json.RawMessage(nil), rec...)})
				continue
			}
			t := &Table{
				ID:      bj.ID,
				Label:   bj.Label,
				OCRText: bj.OCRText,
				BBox:    bbox,
				Score:   bj.Score,
				Status:  bj.Status,
				Cells:   make([]*Cell, 0, len(tj.Cells)),
			}
			for _, cj := range tj.Cells {
				t.Cells = append(t.Cells, &Cell{
					ID:                 cj.ID,
					Row:                cj.Row,
					Col:                cj.Col,
					RowSpan:            cj.RowSpan,
					ColSpan:            cj.ColSpan,
					Label:              cj.Label,
					Text:               cj.Text,
					BBox:               BBox{XMin: cj.XMin, YMin: cj.YMin, XMax: cj.XMax, YMax: cj.YMax},
					Score:              cj.Score,
					RowLabel:           cj.RowLabel,
					VerificationStatus: cj.VerificationStatus,
					Status:             cj.Status,
					FailedValidation:   cj.FailedValidation,
					LabelID:            cj.LabelID,
					LookupEdited:       cj.LookupEdited,
				})
			}
			boxes = append(boxes, t)
		default:
			boxes = append(boxes, &Generic{
				ID:    bj.ID,
				Kind:  bj.Type,
				Label: bj.Label,
				BBox:  bbox,
				Raw:   append(json.RawMessage(nil), rec...),
			})
		}
	}
	return boxes
}

func encodeBoxes(boxes []Box) ([]json.RawMessage, error) {
	if boxes == nil {
		return nil, nil
	}

	records := make([]json.RawMessage, 0, len(boxes))
	for _, b := range boxes {
		var (
			data []byte
			err  error
		)

		switch v := b.(type) {
		case *Field:
			data, err = json.Marshal(boxJSON{
				ID:      v.ID,
				Type:    wireTypeField,
				Label:   v.Label,
				XMin:    v.BBox.XMin,
				YMin:    v.BBox.YMin,
				XMax:    v.BBox.XMax,
				YMax:    v.BBox.YMax,
				Score:   v.Score,
				OCRText: v.OCRText,
				Status:  v.Status,
			})
		case *Table:
			cells := make([]cellJSON, 0, len(v.Cells))
			for _, c := range v.Cells {
				cells = append(cells, cellJSON{
					ID:                 c.ID,
					Row:                c.Row,
					Col:                c.Col,
					RowSpan:            c.RowSpan,
					ColSpan:            c.ColSpan,
					Label:              c.Label,
					XMin:               c.BBox.XMin,
					YMin:               c.BBox.YMin,
					XMax:               c.BBox.XMax,
					YMax:               c.BBox.YMax,
					Score:              c.Score,
					Text:               c.Text,
					RowLabel:           c.RowLabel,
					VerificationStatus: c.VerificationStatus,
					Status:             c.Status,
					FailedValidation:   c.FailedValidation,
					LabelID:            c.LabelID,
					LookupEdited:       c.LookupEdited,
				})
			}
			data, err = json.Marshal(tableJSON{
				boxJSON: boxJSON{
					ID:      v.ID,
					Type:    wireTypeTable,
					Label:   v.Label,
					XMin:    v.BBox.XMin,
					YMin:    v.BBox.YMin,
					XMax:    v.BBox.XMax,
					YMax:    v.BBox.YMax,
					Score:   v.Score,
					OCRText: v.OCRText,
					Status:  v.Status,
				},
				Cells: cells,
			})
		case *Generic:
			if v.Raw != nil {
				data = v.Raw
			} else {
				data, err = json.Marshal(boxJSON{
					ID:    v.ID,
					Type:  v.Kind,
					Label: v.Label,
					XMin:  v.BBox.XMin,
					YMin:  v.BBox.YMin,
					XMax:  v.BBox.XMax,
					YMax:  v.BBox.YMax,
				})
			}
		default:
			data, err = json.Marshal(b)
		}

		if err != nil {
			return nil, err
		}
		records = append(records, data)
	}
	return records, nil
}
