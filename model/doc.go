// Package model provides the in-memory representation of a processed
// document: the detected boxes produced by an upstream document-understanding
// pipeline.
//
// # Document Structure
//
// The [Document] type holds two candidate box lists, one human-reviewed and
// one model-produced. Exactly one of them is authoritative at any time:
//
//	doc := model.NewDocument()
//	boxes := doc.ActiveBoxes() // moderated when present, else predicted
//
// # Boxes
//
// All detected regions implement the [Box] interface. The concrete types are:
//
//   - [Field] - a single extracted named value (label + OCR text)
//   - [Table] - a detected table owning a sequence of [Cell] records
//   - [Generic] - any other box kind, carried through unchanged
//
// # Tables
//
// A [Table] holds a sparse, ordered sequence of [Cell] records. Each cell
// carries its row/column position, semantic column label, text value, and the
// review metadata attached by the upstream pipeline. Export helpers
// ToMarkdown() and ToCSV() render the sparse cells as a grid.
//
// # Geometry
//
// [BBox] is a bounding box in the upstream coordinate shape (xmin/ymin/
// xmax/ymax) with intersection and union calculations.
//
// # Wire Format
//
// Documents marshal to and from the JSON shape emitted by the upstream
// pipeline; the "type" key on each box record selects the concrete Go type.
// Unknown box kinds and unknown keys survive a decode/encode round trip.
package model
