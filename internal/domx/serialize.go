package domx

import (
	"strings"

	"golang.org/x/net/html"
)

// OuterHTML renders n and its descendants as an HTML5 fragment.
func OuterHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// InnerHTML renders n's children as an HTML5 fragment, without n itself.
func InnerHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// Wrap builds a detached <div> element containing clones of the given
// nodes as children, used to assemble a single fragment out of several
// sibling subtrees kept by the scorer. maxDepth bounds each clone.
func Wrap(nodes []*html.Node, maxDepth int) *html.Node {
	div := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: 0}
	for _, n := range nodes {
		div.AppendChild(CloneSubtree(n, maxDepth))
	}
	return div
}
