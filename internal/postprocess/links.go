package postprocess

import (
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// UnwrapLinks removes every <a> element within root while preserving its
// text content, matching the include_links=false behavior. Traversal
// does not descend past maxDepth.
func UnwrapLinks(root *html.Node, maxDepth int) {
	var anchors []*html.Node
	domx.WalkBounded(root, maxDepth, func(n *html.Node, _ int) {
		if n.Type == html.ElementNode && n.Data == "a" {
			anchors = append(anchors, n)
		}
	})
	for _, a := range anchors {
		domx.Unwrap(a)
	}
}
