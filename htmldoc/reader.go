// Package htmldoc imports HTML tables into the box model. It covers review
// tooling that exports detected tables as HTML: each <table> element becomes
// a table box with row/column-indexed cells, with the header row at index 0.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/copydown/idgen"
	"github.com/tsawler/copydown/model"
)

// Reader provides access to HTML document content.
type Reader struct {
	doc *html.Node
	ids *idgen.Generator
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return &Reader{
		doc: doc,
		ids: idgen.New(),
	}, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Document converts the parsed HTML into a document whose predicted box list
// holds one table box per <table> element, in document order. Cell rows and
// columns are 0- and 1-indexed respectively; <thead> and <th> cells land on
// row 0.
func (r *Reader) Document() *model.Document {
	doc := model.NewDocument()
	for _, node := range findTables(r.doc) {
		if t := r.parseTable(node); t != nil && len(t.Cells) > 0 {
			doc.PredictedBoxes = append(doc.PredictedBoxes, t)
		}
	}
	return doc
}

// findTables collects table elements in document order, skipping tables
// nested inside other tables.
func findTables(n *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "table" {
			tables = append(tables, node)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return tables
}

// parseTable extracts a table box from an HTML table element.
func (r *Reader) parseTable(tableNode *html.Node) *model.Table {
	t := &model.Table{
		ID:      r.ids.TableID(),
		Label:   "table",
		OCRText: "table",
		Score:   1.0,
		Status:  model.StatusCorrectlyPredicted,
		Cells:   make([]*model.Cell, 0),
	}

	row := 0
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					r.parseRow(tr, t, row)
					row++
				}
			}
		case "tr":
			r.parseRow(c, t, row)
			row++
		}
	}

	return t
}

// parseRow appends one cell per <td>/<th> in the row. Columns are indexed
// from 1; spans are recorded but not expanded.
func (r *Reader) parseRow(tr *html.Node, t *model.Table, row int) {
	col := 0
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		col++

		label := attr(c, "data-label")
		if label == "" {
			label = fmt.Sprintf("col_%d", col)
		}

		t.Cells = append(t.Cells, &model.Cell{
			ID:                 r.ids.CellID(label, row),
			Row:                row,
			Col:                col,
			RowSpan:            intAttr(c, "rowspan"),
			ColSpan:            intAttr(c, "colspan"),
			Label:              label,
			Text:               cellText(c),
			Score:              1.0,
			VerificationStatus: model.StatusCorrectlyPredicted,
		})
	}
}

// cellText returns the cell's text content with whitespace collapsed and
// normalized to NFC.
func cellText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return norm.NFC.String(strings.Join(strings.Fields(sb.String()), " "))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func intAttr(n *html.Node, key string) int {
	v, err := strconv.Atoi(attr(n, key))
	if err != nil {
		return 0
	}
	return v
}
