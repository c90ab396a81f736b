// Package goquery implements ao3.Parser and ao3.DocumentQuery on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ao3"
)

// Ensure Parser implements ao3.Parser at compile time.
var _ ao3.Parser = (*Parser)(nil)

// Parser parses HTML into goquery documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and returns a queryable document.
func (p *Parser) Parse(html string) (ao3.DocumentQuery, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ao3.Errorf(ao3.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Ensure Document implements ao3.DocumentQuery at compile time.
var _ ao3.DocumentQuery = (*Document)(nil)

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// NewDocument wraps an already parsed goquery document.
func NewDocument(doc *goquery.Document) *Document {
	return &Document{doc: doc}
}

// Select returns the nodes matching selector in document order.
func (d *Document) Select(selector string) []ao3.Node {
	sel := d.doc.Find(selector)
	nodes := make([]ao3.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Ensure Node implements ao3.Node at compile time.
var _ ao3.Node = (*Node)(nil)

// Node is a single matched element.
type Node struct {
	sel *goquery.Selection
}

// Text returns the combined text of the element and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Attr returns the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// HTML returns the inner HTML of the element.
func (n *Node) HTML() (string, error) {
	return n.sel.Html()
}
