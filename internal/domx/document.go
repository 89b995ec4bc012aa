// Package domx wraps golang.org/x/net/html and goquery into the mutable,
// addressable DOM the rest of the pipeline operates over: node removal,
// renaming, and unwrapping, plus depth-bounded traversal.
package domx

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NodeID addresses a node for the lifetime of its Document. It is the
// node pointer itself — valid as long as the Document that produced it
// is alive, and never reused across documents.
type NodeID = *html.Node

// Document is the mutable parsed tree the pipeline operates over. It
// exists only for the duration of one extraction call.
type Document struct {
	Root *html.Node
	GQ   *goquery.Document
}

// Parse builds a Document from an HTML reader. The underlying parser
// (golang.org/x/net/html) implements the WHATWG tree-construction
// algorithm and never rejects input, so this only fails on a reader
// error, never on malformed markup.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	gq := goquery.NewDocumentFromNode(root)
	return &Document{Root: root, GQ: gq}, nil
}

// ParseString builds a Document from an HTML string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Find runs a CSS selector query against the whole document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.GQ.Find(selector)
}

// Selection wraps a single node so it can be queried with Find.
func (d *Document) Selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// Body returns the <body> element, or the document root if none exists.
// The parser synthesizes a <body> for a bare fragment, so the root is
// returned only for documents without one, such as a frameset page.
func (d *Document) Body() *html.Node {
	if body := d.Find("body"); body.Length() > 0 {
		return body.Get(0)
	}
	return d.Root
}
