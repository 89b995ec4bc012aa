package clean

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// Clean prunes known boilerplate from doc in place, top-down, before
// content scoring runs. Comment nodes are removed unless includeComments
// is set. favorPrecision extends the boilerplate regex with a few more
// aggressive terms. maxDepth bounds every walk against pathological
// nesting.
func Clean(doc *domx.Document, includeComments, favorPrecision bool, maxDepth int) {
	re := boilerplateRE
	if favorPrecision {
		re = boilerplatePrecisionRE
	}

	removeFixedTags(doc, maxDepth)
	removeOutsideArticle(doc, maxDepth)
	if !includeComments {
		removeComments(doc.Root, maxDepth)
	}
	removeBoilerplateLeaves(doc, re, maxDepth)
	removeEmptyContainers(doc, re, maxDepth)
}

func removeFixedTags(doc *domx.Document, maxDepth int) {
	tagSet := tagSetOf(removeTags)
	var nodes []*html.Node
	for _, n := range domx.ElementsBounded(doc.Root, maxDepth) {
		if tagSet[strings.ToLower(n.Data)] {
			nodes = append(nodes, n)
		}
	}
	for _, n := range nodes {
		domx.Remove(n)
	}
}

func removeOutsideArticle(doc *domx.Document, maxDepth int) {
	tagSet := tagSetOf(conditionalOutsideArticleTags)
	var nodes []*html.Node
	for _, n := range domx.ElementsBounded(doc.Root, maxDepth) {
		if !tagSet[strings.ToLower(n.Data)] {
			continue
		}
		if !hasAncestorTag(n, "article") {
			nodes = append(nodes, n)
		}
	}
	for _, n := range nodes {
		domx.Remove(n)
	}
}

// removeComments walks root for comment nodes, stopping at maxDepth
// levels below it.
func removeComments(root *html.Node, maxDepth int) {
	var comments []*html.Node
	domx.WalkBounded(root, maxDepth, func(n *html.Node, _ int) {
		if n.Type == html.CommentNode {
			comments = append(comments, n)
		}
	})
	for _, n := range comments {
		domx.Remove(n)
	}
}

// removeBoilerplateLeaves removes every non-structural-container element
// whose class or id matches re. Structural containers are handled
// separately by removeEmptyContainers, after this pass has had a chance
// to hollow them out.
func removeBoilerplateLeaves(doc *domx.Document, re *regexp.Regexp, maxDepth int) {
	var nodes []*html.Node
	for _, n := range domx.ElementsBounded(doc.Root, maxDepth) {
		if structuralContainers[strings.ToLower(n.Data)] {
			continue
		}
		if matchesBoilerplate(n, re) {
			nodes = append(nodes, n)
		}
	}
	for _, n := range nodes {
		domx.Remove(n)
	}
}

// removeEmptyContainers removes structural containers that match the
// boilerplate regex AND have been left with no meaningful content after
// removeBoilerplateLeaves ran — i.e. every descendant was removed too.
func removeEmptyContainers(doc *domx.Document, re *regexp.Regexp, maxDepth int) {
	var nodes []*html.Node
	for _, n := range domx.ElementsBounded(doc.Root, maxDepth) {
		if !structuralContainers[strings.ToLower(n.Data)] {
			continue
		}
		if !matchesBoilerplate(n, re) {
			continue
		}
		if strings.TrimSpace(domx.TextOf(n, maxDepth)) == "" && !hasMediaDescendant(n, maxDepth) {
			nodes = append(nodes, n)
		}
	}
	for _, n := range nodes {
		domx.Remove(n)
	}
}

var mediaTags = map[string]bool{"img": true, "table": true, "iframe": true}

func hasMediaDescendant(n *html.Node, maxDepth int) bool {
	found := false
	domx.WalkBounded(n, maxDepth, func(c *html.Node, _ int) {
		if found || c.Type != html.ElementNode {
			return
		}
		if mediaTags[strings.ToLower(c.Data)] {
			found = true
		}
	})
	return found
}

func hasAncestorTag(n *html.Node, tag string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && strings.ToLower(p.Data) == tag {
			return true
		}
	}
	return false
}

func tagSetOf(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

func matchesBoilerplate(n *html.Node, re *regexp.Regexp) bool {
	class, _ := domx.Attr(n, "class")
	id, _ := domx.Attr(n, "id")
	return re.MatchString(class) || re.MatchString(id)
}

// BoilerplateRegexp exposes the class/id exclusion pattern used during
// pruning so the scorer can re-check containers that survived cleaning
// (a container's class may be a compound like "content sidebar-widget"
// that the scorer wants to penalize even though the cleaner left it
// alone because it wasn't empty).
func BoilerplateRegexp(favorPrecision bool) *regexp.Regexp {
	if favorPrecision {
		return boilerplatePrecisionRE
	}
	return boilerplateRE
}
