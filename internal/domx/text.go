package domx

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CollapseWhitespace joins runs of whitespace into single spaces and
// trims the ends, matching the plain-text serialization rule: whitespace
// collapses to single spaces within a block.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TextLength returns the collapsed-whitespace character count of a
// selection's text content. Traversal does not descend past maxDepth
// levels below sel, bounding the cost against pathological nesting.
func TextLength(sel *goquery.Selection, maxDepth int) int {
	if sel.Length() == 0 {
		return 0
	}
	return utf8.RuneCountInString(CollapseWhitespace(TextOf(sel.Get(0), maxDepth)))
}

// LinkDensity is the ratio of character count inside <a> descendants to
// the total character count of sel. An empty block has density 0.
// Traversal does not descend past maxDepth.
func LinkDensity(sel *goquery.Selection, maxDepth int) float64 {
	total := TextLength(sel, maxDepth)
	if total == 0 {
		return 0
	}
	root := sel.Get(0)
	linkLen := 0
	WalkBounded(root, maxDepth, func(n *html.Node, _ int) {
		if n != root && n.Type == html.ElementNode && strings.ToLower(n.Data) == "a" {
			linkLen += utf8.RuneCountInString(CollapseWhitespace(TextOf(n, maxDepth)))
		}
	})
	if linkLen > total {
		linkLen = total
	}
	return float64(linkLen) / float64(total)
}

// blockTags are the elements that generate their own line box per the
// glossary definition of "block-level element".
var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "blockquote": true, "pre": true, "figure": true,
	"dl": true, "dd": true, "dt": true, "table": true,
	"section": true, "article": true, "div": true,
}

// IsBlockLevel reports whether a node's tag is block-level.
func IsBlockLevel(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return blockTags[strings.ToLower(n.Data)]
}

// IsBlockLevelSel is the goquery.Selection form of IsBlockLevel.
func IsBlockLevelSel(sel *goquery.Selection) bool {
	if sel.Length() == 0 {
		return false
	}
	return IsBlockLevel(sel.Get(0))
}

// ContainsOnlyInline reports whether every direct child element of sel
// is an inline (non-block) element — the "div containing only inline
// children" candidate-block case.
func ContainsOnlyInline(sel *goquery.Selection) bool {
	all := true
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		n := c.Get(0)
		if n.Type == html.ElementNode && IsBlockLevel(n) {
			all = false
		}
	})
	return all
}

// HasSentenceSignal reports whether text contains a comma or period
// beyond the first 25 characters.
func HasSentenceSignal(text string) bool {
	if len(text) <= 25 {
		return false
	}
	rest := text[25:]
	return strings.ContainsAny(rest, ",.")
}

// inlineTags are elements that render without generating their own line
// box — the complement of blockTags for the purposes of the "direct
// child that is not text/inline" scoring penalty.
var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "dfn": true, "em": true,
	"i": true, "img": true, "kbd": true, "mark": true, "q": true, "rp": true,
	"rt": true, "ruby": true, "s": true, "samp": true, "small": true,
	"span": true, "strong": true, "sub": true, "sup": true, "time": true,
	"u": true, "var": true, "wbr": true,
}

// IsInline reports whether an element tag is inline-level.
func IsInline(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return inlineTags[strings.ToLower(n.Data)]
}

// TextOf concatenates the text content of n and its descendants,
// without going through a goquery Selection. Traversal does not descend
// past maxDepth levels below n, bounding the cost against pathological
// nesting.
func TextOf(n *html.Node, maxDepth int) string {
	var sb strings.Builder
	var walk func(*html.Node, int)
	walk = func(n *html.Node, depth int) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if depth >= maxDepth {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth+1)
		}
	}
	walk(n, 0)
	return sb.String()
}

// Attr returns an attribute value case-insensitively, matching the
// data model's case-insensitive attribute-key invariant.
func Attr(n *html.Node, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == name {
			return a.Val, true
		}
	}
	return "", false
}
