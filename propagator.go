package copydown

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/copydown/idgen"
	"github.com/tsawler/copydown/model"
	"github.com/tsawler/copydown/tables"
)

// Propagator copies a field value into a table column across a document's
// data rows. Each configuration method returns a new Propagator instance,
// making it safe to share a configured base across call sites.
type Propagator struct {
	options Options
	logger  *slog.Logger
	ids     *idgen.Generator
}

// clone creates a copy of the Propagator with a copy of its options.
func (p *Propagator) clone() *Propagator {
	return &Propagator{
		options: p.options.clone(),
		logger:  p.logger,
		ids:     p.ids,
	}
}

// Field sets the label of the field box whose value is copied.
//
// Example:
//
//	doc, _ = copydown.New().Field("due_date").Apply(doc)
func (p *Propagator) Field(label string) *Propagator {
	newProp := p.clone()
	newProp.options.fieldLabel = label
	return newProp
}

// Column sets the column label the value is written under.
//
// Example:
//
//	doc, _ = copydown.New().Column("line_item_due_date").Apply(doc)
func (p *Propagator) Column(label string) *Propagator {
	newProp := p.clone()
	newProp.options.columnLabel = label
	return newProp
}

// WithLogger sets the logger used for soft failures and absorbed errors.
// Without one, nothing is logged.
func (p *Propagator) WithLogger(logger *slog.Logger) *Propagator {
	newProp := p.clone()
	newProp.logger = logger
	return newProp
}

// WithIDs sets the identifier generator used for synthesized boxes. Without
// one, a fresh generator is created on first use.
func (p *Propagator) WithIDs(ids *idgen.Generator) *Propagator {
	newProp := p.clone()
	newProp.ids = ids
	return newProp
}

// Apply copies the configured field value into the target column of every
// data row of the document's table, mutating the document in place. Row 0 is
// the header row and is never written.
//
// Apply never fails: a missing or empty field leaves the document unchanged,
// and an error partway through leaves the document in whatever state it
// reached. Both cases are reported as warnings.
func (p *Propagator) Apply(doc *model.Document) (*model.Document, []Warning) {
	return p.apply(doc, -1)
}

// ApplyAll applies the propagation to every document in docs, in order and
// in place, and returns the same slice with all warnings aggregated. One
// document's failure never aborts the batch.
func (p *Propagator) ApplyAll(docs []*model.Document) ([]*model.Document, []Warning) {
	var all []Warning
	for i, doc := range docs {
		_, warnings := p.apply(doc, i)
		all = append(all, warnings...)
	}
	return docs, all
}

// apply runs the propagation for one document. index is the document's
// position within a batch, or -1.
func (p *Propagator) apply(doc *model.Document, index int) (result *model.Document, warnings []Warning) {
	result = doc

	// Outer boundary for genuinely unexpected failures from malformed box
	// data. Whatever mutation already happened is kept.
	defer func() {
		if r := recover(); r != nil {
			p.log().Error("copying field value to table rows failed",
				"field", p.options.fieldLabel,
				"column", p.options.columnLabel,
				"document", index,
				"error", r)
			warnings = append(warnings, Warning{
				Code:     WarningDocumentError,
				Message:  fmt.Sprintf("copying %q to %q: %v", p.options.fieldLabel, p.options.columnLabel, r),
				Document: index,
			})
		}
	}()

	if doc == nil {
		return nil, nil
	}

	value := doc.FieldValue(p.options.fieldLabel)
	if value == "" {
		p.log().Warn("field not found in document",
			"field", p.options.fieldLabel,
			"document", index)
		warnings = append(warnings, Warning{
			Code:     WarningMissingField,
			Message:  fmt.Sprintf("field %q not found", p.options.fieldLabel),
			Document: index,
		})
		return doc, warnings
	}

	table := tables.Ensure(doc, p.generator())

	for row := range tables.GroupByRow(table) {
		// Row 0 is the header row
		if row > 0 {
			tables.SetCellValue(doc, p.generator(), row, p.options.columnLabel, value)
		}
	}

	return doc, warnings
}

func (p *Propagator) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (p *Propagator) generator() *idgen.Generator {
	if p.ids == nil {
		p.ids = idgen.New()
	}
	return p.ids
}
