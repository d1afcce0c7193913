// Package idgen generates identifiers for synthesized boxes and cells.
//
// Identifiers combine a random run component with a monotonic counter, so
// they stay unique under arbitrarily rapid repeated calls. Wall-clock time is
// never part of an identifier.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers for generated boxes. The zero value
// is not usable; create one with New. A single Generator is safe for
// concurrent use.
type Generator struct {
	run string
	seq atomic.Uint64
}

// New creates a Generator with a fresh random run component.
func New() *Generator {
	return &Generator{run: uuid.NewString()}
}

// TableID returns an identifier for a synthesized table box.
func (g *Generator) TableID() string {
	return fmt.Sprintf("generated-table-%s-%d", g.run, g.seq.Add(1))
}

// CellID returns an identifier for a synthesized cell, incorporating the
// column label and row index it was created for.
func (g *Generator) CellID(label string, row int) string {
	return fmt.Sprintf("generated-cell-%s-%d-%s-%d", label, row, g.run, g.seq.Add(1))
}
