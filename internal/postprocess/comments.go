package postprocess

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// Comments collects every comment node preserved within root (the
// cleaner only leaves these in place when include_comments is set),
// returning the concatenated comment text and the comments re-rendered
// as their own HTML fragment. Traversal does not descend past maxDepth.
func Comments(root *html.Node, maxDepth int) (text string, htmlFrag string) {
	var texts []string
	var frags []string

	domx.WalkBounded(root, maxDepth, func(n *html.Node, _ int) {
		if n.Type != html.CommentNode {
			return
		}
		if t := strings.TrimSpace(n.Data); t != "" {
			texts = append(texts, t)
		}
		if frag, err := domx.OuterHTML(n); err == nil {
			frags = append(frags, frag)
		}
	})

	return strings.Join(texts, "\n\n"), strings.Join(frags, "\n")
}
