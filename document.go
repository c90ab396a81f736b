package ao3

// Node is a single element matched by a selector query.
type Node interface {
	// Text returns the combined text of the node and its descendants.
	Text() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// HTML returns the inner HTML of the node.
	HTML() (string, error)
}

// DocumentQuery answers CSS selector queries over a parsed HTML tree.
// Implementations are read-only.
type DocumentQuery interface {
	// Select returns the nodes matching selector in document order.
	// An unmatched selector returns an empty slice.
	Select(selector string) []Node
}

// Parser parses raw HTML into a DocumentQuery.
type Parser interface {
	Parse(html string) (DocumentQuery, error)
}

// text returns the concatenated text of every node matching selector.
func text(q DocumentQuery, selector string) string {
	var s string
	for _, n := range q.Select(selector) {
		s += n.Text()
	}
	return s
}
