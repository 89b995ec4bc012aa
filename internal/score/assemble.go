package score

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// Extract runs phases A-C over a cleaned document and returns the
// assembled content subtree (a detached, clonable node) plus whether
// any qualifying content was found at all. maxDepth bounds every walk
// against pathological nesting.
func Extract(doc *domx.Document, includeTables, favorPrecision, favorRecall bool, maxDepth int) (*html.Node, bool) {
	root := SelectRoot(doc, maxDepth)
	candidates := Candidates(root, includeTables, maxDepth)
	if len(candidates) == 0 {
		return nil, false
	}

	pageTitle := ""
	if titleNode := firstByTag(doc.Root, maxDepth, "title"); titleNode != nil {
		pageTitle = strings.TrimSpace(domx.TextOf(titleNode, maxDepth))
	}
	blocks := ScoreBlocks(candidates, pageTitle, favorPrecision, maxDepth)

	maxScore := 0.0
	for _, b := range blocks {
		if !b.Discarded && b.Score > maxScore {
			maxScore = b.Score
		}
	}
	if maxScore <= 0 {
		return nil, false
	}

	var topNodes []*html.Node
	for _, b := range blocks {
		if !b.Discarded && b.Score >= 0.5*maxScore {
			topNodes = append(topNodes, b.Node)
		}
	}
	lca := lowestCommonAncestor(topNodes)
	if lca == nil {
		return nil, false
	}

	thresholds := ThresholdsFor(favorPrecision, favorRecall)
	dropInLCA(blocks, lca, thresholds, includeTables, maxDepth)

	return domx.CloneSubtree(lca, maxDepth), true
}

// dropInLCA removes, from the original tree, every candidate block
// within lca's subtree that fails its mode's inclusion threshold, and,
// when includeTables is false, every <table> below lca.
func dropInLCA(blocks []Block, lca *html.Node, t Thresholds, includeTables bool, maxDepth int) {
	var drop []*html.Node
	for _, b := range blocks {
		if !isDescendantOrSelf(b.Node, lca) {
			continue
		}
		if !passesThreshold(b, t, includeTables, maxDepth) {
			drop = append(drop, b.Node)
		}
	}
	if !includeTables {
		for _, n := range domx.ElementsBounded(lca, maxDepth) {
			if n != lca && strings.ToLower(n.Data) == "table" {
				drop = append(drop, n)
			}
		}
	}
	for _, n := range drop {
		domx.Remove(n)
	}
}

func passesThreshold(b Block, t Thresholds, includeTables bool, maxDepth int) bool {
	if b.Discarded {
		return false
	}
	text := strings.TrimSpace(domx.TextOf(b.Node, maxDepth))
	textLen := len(domx.CollapseWhitespace(text))
	density := domx.LinkDensity(b.Sel, maxDepth)

	if goquery.NodeName(b.Sel) == "table" {
		if !includeTables || !tableHasContentCell(b.Node, maxDepth) {
			return false
		}
	}

	return textLen >= t.MinTextLen && density <= t.MaxLinkDensity && b.Score >= t.MinScore
}

// tableHasContentCell reports whether a table contains at least one
// cell with text length >= 25 and link density < 0.3, filtering out
// tables used for navigation/layout rather than data.
func tableHasContentCell(table *html.Node, maxDepth int) bool {
	found := false
	domx.WalkBounded(table, maxDepth, func(n *html.Node, _ int) {
		if found || n.Type != html.ElementNode {
			return
		}
		if n.Data != "td" && n.Data != "th" {
			return
		}
		cell := wrapNode(n)
		if domx.TextLength(cell, maxDepth) >= 25 && domx.LinkDensity(cell, maxDepth) < 0.3 {
			found = true
		}
	})
	return found
}

func isDescendantOrSelf(n, ancestor *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// lowestCommonAncestor returns the deepest node that is an ancestor of
// (or equal to) every node in nodes.
func lowestCommonAncestor(nodes []*html.Node) *html.Node {
	if len(nodes) == 0 {
		return nil
	}
	chain := ancestorChain(nodes[0])
	for _, n := range nodes[1:] {
		set := map[*html.Node]bool{}
		for cur := n; cur != nil; cur = cur.Parent {
			set[cur] = true
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if set[chain[i]] {
				chain = chain[:i+1]
				break
			}
			if i == 0 {
				chain = nil
			}
		}
		if len(chain) == 0 {
			return nil
		}
	}
	return chain[len(chain)-1]
}

// ancestorChain returns n and its ancestors, root-first.
func ancestorChain(n *html.Node) []*html.Node {
	var chain []*html.Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
