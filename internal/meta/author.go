package meta

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

var (
	authorPrefixRE  = regexp.MustCompile(`(?i)^\s*(by|posted by|written by|analysis by|authored by)\s+`)
	authorTrailerRE = regexp.MustCompile(`(?i)\s*[|\-–—]\s*(follow|about|@\w+).*$`)
	pureDateRE      = regexp.MustCompile(`(?i)^\s*\d{1,4}[./\-]\d{1,2}[./\-]\d{1,4}\s*$`)
	initialPeriodRE = regexp.MustCompile(`\b([A-Z])\.`)
	bylineClassRE   = regexp.MustCompile(`(?i)\bby(line|-?author)?\b`)
)

// resolveAuthor applies the author source priority chain and cleaning
// pipeline, rejecting values on the caller's blacklist. maxDepth bounds
// the byline-class scan against pathological nesting.
func resolveAuthor(doc *goquery.Document, blocks []map[string]any, mainContent *goquery.Selection, blacklist []string, maxDepth int) string {
	raw := ""
	if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting"); node != nil {
		raw = jsonLDNestedName(node, "author")
	}
	if raw == "" {
		raw = metaContent(doc, "author")
	}
	if raw == "" {
		raw = metaContent(doc, "article:author")
	}
	if raw == "" {
		if sel := doc.Find(`[itemprop="author"]`).First(); sel.Length() > 0 {
			raw = domx.TextOf(sel.Get(0), maxDepth)
		}
	}
	if raw == "" {
		if sel := doc.Find(`[rel="author"]`).First(); sel.Length() > 0 {
			raw = domx.TextOf(sel.Get(0), maxDepth)
		}
	}
	if raw == "" {
		raw = findByBylineClass(doc, mainContent, maxDepth)
	}

	cleaned := cleanAuthor(raw)
	if cleaned == "" {
		return ""
	}
	for _, b := range blacklist {
		if cleaned == b {
			return ""
		}
	}
	return cleaned
}

func findByBylineClass(doc *goquery.Document, mainContent *goquery.Selection, maxDepth int) string {
	scope := doc.Selection
	if mainContent != nil && mainContent.Length() > 0 {
		scope = mainContent
	}
	scopeNode := scope.Get(0)
	if scopeNode == nil {
		return ""
	}
	found := ""
	domx.WalkBounded(scopeNode, maxDepth, func(n *html.Node, _ int) {
		if found != "" || n.Type != html.ElementNode {
			return
		}
		class, _ := domx.Attr(n, "class")
		if class == "" || !bylineClassRE.MatchString(class) {
			return
		}
		text := strings.TrimSpace(domx.TextOf(n, maxDepth))
		if text != "" {
			found = text
		}
	})
	return found
}

// cleanAuthor strips "By "-style prefixes, trailing social/about
// segments, rejects pure-date values, normalizes list separators, and
// strips periods from single-letter initials.
func cleanAuthor(raw string) string {
	value := strings.TrimSpace(domx.CollapseWhitespace(raw))
	if value == "" {
		return ""
	}
	if pureDateRE.MatchString(value) {
		return ""
	}

	value = authorPrefixRE.ReplaceAllString(value, "")
	value = authorTrailerRE.ReplaceAllString(value, "")
	value = strings.TrimSpace(value)
	if value == "" || pureDateRE.MatchString(value) {
		return ""
	}

	value = strings.ReplaceAll(value, ", ", "; ")
	value = strings.ReplaceAll(value, " and ", "; ")
	value = initialPeriodRE.ReplaceAllString(value, "$1")

	return strings.TrimSpace(value)
}
