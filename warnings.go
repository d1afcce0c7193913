package copydown

import (
	"fmt"
	"strings"
)

// WarningCode identifies a category of non-fatal issue encountered while
// processing a document.
type WarningCode int

const (
	// WarningMissingField means the source field was absent or empty, so the
	// document was returned unmodified.
	WarningMissingField WarningCode = iota

	// WarningDocumentError means processing a document failed partway through;
	// the document was returned in whatever state it reached.
	WarningDocumentError
)

func (c WarningCode) String() string {
	switch c {
	case WarningMissingField:
		return "missing field"
	case WarningDocumentError:
		return "document error"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue absorbed during propagation.
// Processing always continues past a warning.
type Warning struct {
	Code    WarningCode
	Message string

	// Document is the index of the affected document within a batch,
	// or -1 for single-document operations.
	Document int
}

func (w Warning) String() string {
	if w.Document >= 0 {
		return fmt.Sprintf("document %d: %s: %s", w.Document, w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
