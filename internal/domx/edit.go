package domx

import "golang.org/x/net/html"

// Remove detaches n from its parent. A no-op if n has no parent (already
// detached, or the document root).
func Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Rename rewrites an element node's tag name in place.
func Rename(n *html.Node, tag string) {
	if n.Type == html.ElementNode {
		n.Data = tag
		n.DataAtom = 0
	}
}

// Unwrap splices n's children into n's parent at n's position and
// removes n, keeping text but dropping the wrapping tag.
func Unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		n.RemoveChild(child)
		parent.InsertBefore(child, n)
		child = next
	}
	parent.RemoveChild(n)
}

// Prune implements the collect-then-apply pattern: a read-only pass
// collects nodes matching keep==false, then a second pass detaches them.
// This avoids mutating the tree while iterating it.
func Prune(roots []*html.Node, keep func(*html.Node) bool) {
	var drop []*html.Node
	for _, r := range roots {
		if !keep(r) {
			drop = append(drop, r)
		}
	}
	for _, n := range drop {
		Remove(n)
	}
}

// CloneSubtree deep-copies a node and its descendants, detached from any
// document, so it can be assembled into a new fragment without
// disturbing the source tree. Descendants beyond maxDepth levels below n
// are not cloned, bounding the cost against pathological nesting.
func CloneSubtree(n *html.Node, maxDepth int) *html.Node {
	return cloneSubtree(n, 0, maxDepth)
}

func cloneSubtree(n *html.Node, depth, maxDepth int) *html.Node {
	clone := &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
		Attr:     append([]html.Attribute(nil), n.Attr...),
	}
	if depth >= maxDepth {
		return clone
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		clone.AppendChild(cloneSubtree(child, depth+1, maxDepth))
	}
	return clone
}
