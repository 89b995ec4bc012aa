package domx

import "golang.org/x/net/html"

// Depth returns n's distance from the document root by walking parent
// pointers. O(depth); callers that need this repeatedly should cache it.
func Depth(n *html.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// WalkBounded performs a depth-first, pre-order walk starting at root,
// calling fn for every node whose depth (relative to root, root itself
// at depth 0) does not exceed maxDepth. Subtrees beyond maxDepth are
// skipped rather than causing an error — traversal simply returns
// whatever was collected up to that point.
func WalkBounded(root *html.Node, maxDepth int, fn func(n *html.Node, depth int)) {
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		fn(n, depth)
		if depth >= maxDepth {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
}

// ElementsBounded collects every element node within maxDepth of root,
// in document order.
func ElementsBounded(root *html.Node, maxDepth int) []*html.Node {
	var out []*html.Node
	WalkBounded(root, maxDepth, func(n *html.Node, depth int) {
		if n.Type == html.ElementNode {
			out = append(out, n)
		}
	})
	return out
}
