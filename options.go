package copydown

// Options holds configuration for field propagation.
type Options struct {
	// Label of the field box whose value is copied
	fieldLabel string

	// Column label the value is written under
	columnLabel string
}

// defaultOptions returns the default propagation options.
func defaultOptions() Options {
	return Options{
		fieldLabel:  "invoice_date",
		columnLabel: "line_item_start_date",
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{
		fieldLabel:  o.fieldLabel,
		columnLabel: o.columnLabel,
	}
}
