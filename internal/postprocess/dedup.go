// Package postprocess deduplicates repeated blocks, collects images,
// handles link preservation, and serializes the kept content subtree to
// plain text and an HTML fragment.
package postprocess

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

const fingerprintMaxLen = 200

// fingerprint normalizes a block's text for duplicate detection:
// lowercase, strip punctuation, collapse whitespace, truncate.
func fingerprint(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsPunct(r) {
			continue
		}
		sb.WriteRune(r)
	}
	collapsed := domx.CollapseWhitespace(sb.String())
	if len(collapsed) > fingerprintMaxLen {
		collapsed = collapsed[:fingerprintMaxLen]
	}
	return collapsed
}

// Deduplicate removes block-level elements within root whose fingerprint
// duplicates one already seen earlier in document order. Traversal does
// not descend past maxDepth.
func Deduplicate(root *html.Node, maxDepth int) {
	seen := map[string]bool{}
	var drop []*html.Node

	domx.WalkBounded(root, maxDepth, func(n *html.Node, _ int) {
		if !domx.IsBlockLevel(n) {
			return
		}
		text := strings.TrimSpace(domx.TextOf(n, maxDepth))
		if text == "" {
			return
		}
		fp := fingerprint(text)
		if fp == "" {
			return
		}
		if seen[fp] {
			drop = append(drop, n)
			return
		}
		seen[fp] = true
	})

	for _, n := range drop {
		domx.Remove(n)
	}
}
