// Package copydown propagates an extracted field value into a table column
// across every data row of a document's detected table.
//
// The library operates on the output of an upstream document-understanding
// pipeline: documents holding detected field and table boxes. For each
// document it reads one named field and copies its value into a designated
// column of every non-header table row, creating the table or individual
// cells when absent. Documents are mutated in place.
//
// Basic usage:
//
//	docs, warnings := copydown.New().ApplyAll(docs)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", copydown.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _ = copydown.New().
//	    Field("invoice_date").
//	    Column("line_item_start_date").
//	    WithLogger(logger).
//	    Apply(doc)
//
// Per-document failures never abort a batch: a document whose boxes are
// malformed is logged, reported as a warning, and returned in whatever state
// it reached.
package copydown

import "github.com/tsawler/copydown/model"

// New returns a Propagator with the default configuration: copy the
// "invoice_date" field into the "line_item_start_date" column.
func New() *Propagator {
	return &Propagator{options: defaultOptions()}
}

// Process applies the default propagation to every document in docs, in
// order and in place, and returns the same slice. Per-document failures are
// absorbed; use ApplyAll to observe them as warnings.
func Process(docs []*model.Document) []*model.Document {
	docs, _ = New().ApplyAll(docs)
	return docs
}
