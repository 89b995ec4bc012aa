package postprocess

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// PlainText renders root's text content, separating consecutive
// block-level elements with a blank line while emitting inline content
// with no separator; a <br>, or an element that is neither block nor
// inline (a table cell, a list container), separates its neighbours with
// a space. Whitespace is collapsed within each block and the
// result is trimmed of leading/trailing blank lines. Traversal does not
// descend past maxDepth.
func PlainText(root *html.Node, maxDepth int) string {
	var blocks []string
	var cur strings.Builder

	flush := func() {
		text := domx.CollapseWhitespace(cur.String())
		if text != "" {
			blocks = append(blocks, text)
		}
		cur.Reset()
	}

	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
			block := domx.IsBlockLevel(n)
			spaced := !block && (!domx.IsInline(n) || n.Data == "br")
			if block {
				flush()
			} else if spaced {
				cur.WriteString(" ")
			}
			if depth < maxDepth {
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c, depth+1)
				}
			}
			if block {
				flush()
			} else if spaced {
				cur.WriteString(" ")
			}
			return
		}
		if depth < maxDepth {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, depth+1)
			}
		}
	}
	walk(root, 0)
	flush()

	return strings.Join(blocks, "\n\n")
}

// articlePolicy allows the structural and inline tags that survive into
// the kept content subtree, matching the data model's article-content
// surface rather than bluemonday's general-purpose UGC defaults.
func articlePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowAttrs("cite").OnElements("blockquote", "q")
	p.AllowElements(
		"p", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code",
		"figure", "figcaption", "dl", "dt", "dd",
		"table", "thead", "tbody", "tr", "td", "th",
		"a", "img", "em", "strong", "b", "i", "u", "s",
		"sub", "sup", "br", "span", "div", "time", "mark", "q",
	)
	return p
}

// HTMLFragment serializes root's children through an article-content
// allowlist, dropping any tag or attribute outside the kept surface.
func HTMLFragment(root *html.Node) (string, error) {
	raw, err := domx.InnerHTML(root)
	if err != nil {
		return "", err
	}
	return articlePolicy().Sanitize(raw), nil
}
