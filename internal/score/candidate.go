package score

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// candidateTags are the block-level tags phase A considers as candidate
// blocks, independent of includeTables.
var candidateTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "blockquote": true, "pre": true, "figure": true,
	"dl": true, "dd": true, "dt": true, "div": true,
}

// SelectRoot picks the preferred root per phase A: first <article>,
// else first <main>, else [itemprop=articleBody] or [role=main], else
// the document body. Lookups do not descend past maxDepth.
func SelectRoot(doc *domx.Document, maxDepth int) *goquery.Selection {
	if n := firstByTag(doc.Root, maxDepth, "article"); n != nil {
		return wrapNode(n)
	}
	if n := firstByTag(doc.Root, maxDepth, "main"); n != nil {
		return wrapNode(n)
	}
	if n := firstMatching(doc.Root, maxDepth, isMainRoleOrArticleBody); n != nil {
		return wrapNode(n)
	}
	if n := firstByTag(doc.Root, maxDepth, "body"); n != nil {
		return wrapNode(n)
	}
	return doc.GQ.Selection
}

func isMainRoleOrArticleBody(n *html.Node) bool {
	if itemprop, _ := domx.Attr(n, "itemprop"); itemprop == "articleBody" {
		return true
	}
	role, _ := domx.Attr(n, "role")
	return role == "main"
}

// Candidates collects every block-level descendant of root that
// qualifies as a candidate block: p, h1-h6, li, blockquote, pre,
// figure, dl, dd, dt, table (when includeTables), or a div whose
// direct children are all inline. Traversal does not descend past
// maxDepth levels below root.
func Candidates(root *goquery.Selection, includeTables bool, maxDepth int) []*goquery.Selection {
	rootNode := root.Get(0)
	if rootNode == nil {
		return nil
	}

	var out []*goquery.Selection
	domx.WalkBounded(rootNode, maxDepth, func(n *html.Node, depth int) {
		if n == rootNode || n.Type != html.ElementNode {
			return
		}
		tag := strings.ToLower(n.Data)
		if tag == "table" {
			if !includeTables {
				return
			}
		} else if !candidateTags[tag] {
			return
		}

		sel := wrapNode(n)
		if tag == "div" {
			if !domx.ContainsOnlyInline(sel) || domx.TextLength(sel, maxDepth) == 0 {
				return
			}
		}
		out = append(out, sel)
	})
	return out
}

func wrapNode(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

func firstByTag(root *html.Node, maxDepth int, tag string) *html.Node {
	return firstMatching(root, maxDepth, func(n *html.Node) bool {
		return strings.ToLower(n.Data) == tag
	})
}

// firstMatching returns the first element node within maxDepth of root
// (root itself included) satisfying match, in document order.
func firstMatching(root *html.Node, maxDepth int, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	domx.WalkBounded(root, maxDepth, func(n *html.Node, _ int) {
		if found != nil || n.Type != html.ElementNode {
			return
		}
		if match(n) {
			found = n
		}
	})
	return found
}
