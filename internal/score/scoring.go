package score

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/clean"
	"github.com/hermetic-io/articlext/internal/domx"
)

// Block is a scored candidate block.
type Block struct {
	Sel       *goquery.Selection
	Node      *html.Node
	Score     float64
	Discarded bool // link density >= 0.5
}

// ScoreBlocks scores every candidate per phase B. pageTitle is the
// document's <title> text, used for the h1/h2 signpost bonus. maxDepth
// bounds the text and link-density scan each block triggers.
func ScoreBlocks(candidates []*goquery.Selection, pageTitle string, favorPrecision bool, maxDepth int) []Block {
	exclusionRE := clean.BoilerplateRegexp(favorPrecision)
	blocks := make([]Block, 0, len(candidates))
	for _, sel := range candidates {
		blocks = append(blocks, scoreOne(sel, pageTitle, exclusionRE, maxDepth))
	}
	return blocks
}

func scoreOne(sel *goquery.Selection, pageTitle string, exclusionRE *regexp.Regexp, maxDepth int) Block {
	node := sel.Get(0)
	text := strings.TrimSpace(domx.TextOf(node, maxDepth))
	textLen := len(domx.CollapseWhitespace(text))

	density := domx.LinkDensity(sel, maxDepth)
	if density >= 0.5 {
		return Block{Sel: sel, Node: node, Score: 0, Discarded: true}
	}

	var s float64
	lengthBonus := float64(textLen) / 25
	if lengthBonus > 3 {
		lengthBonus = 3
	}
	s += lengthBonus

	if domx.HasSentenceSignal(text) {
		s += 1
	}

	s -= density * 10

	s -= 0.5 * float64(nonInlineChildCount(sel))

	class, _ := domx.Attr(node, "class")
	id, _ := domx.Attr(node, "id")
	if inclusionRE.MatchString(class) || inclusionRE.MatchString(id) {
		s += 5
	}
	if exclusionRE.MatchString(class) || exclusionRE.MatchString(id) {
		s -= 5
	}

	tag := goquery.NodeName(sel)
	if (tag == "h1" || tag == "h2") && pageTitle != "" {
		headingText := strings.TrimSpace(domx.TextOf(node, maxDepth))
		if headingText != "" && (headingText == pageTitle || strings.HasPrefix(pageTitle, headingText)) {
			s += 2
		}
	}

	return Block{Sel: sel, Node: node, Score: s}
}

func nonInlineChildCount(sel *goquery.Selection) int {
	count := 0
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		n := c.Get(0)
		if n.Type == html.ElementNode && !domx.IsInline(n) {
			count++
		}
	})
	return count
}
