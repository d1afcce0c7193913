// Package tables implements the table operations of the propagation
// pipeline: locating or synthesizing a document's table box, grouping its
// cells by row, and writing cell values by (row, column label).
//
// All functions mutate the document structure in place and hold no state of
// their own. Identifier generation for synthesized boxes is supplied by the
// caller.
package tables
