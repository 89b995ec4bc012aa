// Package fallback implements the readability-style density extractor
// used when the primary scorer yields too little text.
package fallback

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

var (
	inclusionRE = regexp.MustCompile(`(?i)article|body|content|entry|main|post|story|text`)
	exclusionRE = regexp.MustCompile(`(?i)\b(share|social|comment(s)?|advert|sponsor|promo|subscribe|newsletter|cookie|consent|modal|popup|banner|masthead|menu|sidebar|breadcrumb|pagination|related|widget|footer|copyright|disqus)\b`)
)

// candidateTags restricts scoring to content-bearing container and
// block tags — scoring every element (including html/body) would let
// the document root trivially win on raw text length alone.
var candidateTags = map[string]bool{
	"div": true, "section": true, "article": true, "main": true,
	"p": true, "li": true, "blockquote": true, "pre": true,
	"table": true, "td": true,
}

// Extract runs the density scorer over doc and returns the assembled
// subtree, or (nil, false) if nothing scored above zero. maxDepth
// bounds every walk against pathological nesting.
func Extract(doc *domx.Document, maxDepth int) (*html.Node, bool) {
	var top *html.Node
	var topScore float64
	var topText int
	first := true

	domx.WalkBounded(doc.Root, maxDepth, func(n *html.Node, _ int) {
		if n.Type != html.ElementNode || !candidateTags[strings.ToLower(n.Data)] {
			return
		}
		sel := wrapNode(n)
		textLen := domx.TextLength(sel, maxDepth)
		if textLen == 0 {
			return
		}
		s := elementScore(sel, textLen, maxDepth)
		if first || s > topScore {
			top = n
			topScore = s
			topText = textLen
			first = false
		}
	})

	if top == nil || topScore <= 0 {
		return nil, false
	}

	result := climb(top, topText, topScore, maxDepth)
	return domx.CloneSubtree(result, maxDepth), true
}

// climb walks up from node while an ancestor's additional text comes
// with a proportional score increase, and stops once an ancestor would
// double the text without doubling the score.
func climb(node *html.Node, textLen int, score float64, maxDepth int) *html.Node {
	cur := node
	curText := textLen
	curScore := score

	for {
		parent := cur.Parent
		if parent == nil || parent.Type != html.ElementNode {
			return cur
		}
		tag := parent.Data
		if tag == "body" || tag == "html" {
			return cur
		}

		parentSel := wrapNode(parent)
		parentText := domx.TextLength(parentSel, maxDepth)
		if parentText == 0 {
			return cur
		}
		parentScore := elementScore(parentSel, parentText, maxDepth)

		if curText > 0 && parentText >= 2*curText && parentScore < 2*curScore {
			return cur
		}

		cur, curText, curScore = parent, parentText, parentScore
	}
}

func wrapNode(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// elementScore implements score = text-length * (1 - link-density) *
// class/id bonus.
func elementScore(sel *goquery.Selection, textLen int, maxDepth int) float64 {
	density := domx.LinkDensity(sel, maxDepth)
	bonus := 1.0
	class, _ := domx.Attr(sel.Get(0), "class")
	id, _ := domx.Attr(sel.Get(0), "id")
	if inclusionRE.MatchString(class) || inclusionRE.MatchString(id) {
		bonus = 1.25
	} else if exclusionRE.MatchString(class) || exclusionRE.MatchString(id) {
		bonus = 0.75
	}
	return float64(textLen) * (1 - density) * bonus
}
