package meta

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"

	"github.com/hermetic-io/articlext/internal/domx"
)

// titleSeparators are the characters that can introduce a site-name
// suffix. Colons are deliberately excluded: "Title: Subtitle" is a
// single title, not a title/sitename pair.
const titleSeparators = "|–—·•"

// resolveTitle applies the title source priority chain: og:title,
// twitter:title, JSON-LD headline/name on an article node, the <h1>
// nearest the main content, then <title>. maxDepth bounds the
// heading/title text extraction against pathological nesting.
func resolveTitle(doc *goquery.Document, blocks []map[string]any, mainContent *goquery.Selection, siteName string, maxDepth int) string {
	raw := firstMetaContent(doc, "og:title", "twitter:title")
	if raw == "" {
		if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting"); node != nil {
			raw = jsonLDString(node, "headline")
			if raw == "" {
				raw = jsonLDString(node, "name")
			}
		}
	}
	if raw == "" && mainContent != nil {
		if h1 := mainContent.Find("h1").First(); h1.Length() > 0 {
			raw = domx.TextOf(h1.Get(0), maxDepth)
		}
	}
	if raw == "" {
		if titleNode := doc.Find("title").First(); titleNode.Length() > 0 {
			raw = domx.TextOf(titleNode.Get(0), maxDepth)
		}
	}
	return cleanTitle(raw, siteName)
}

// cleanTitle trims the value and strips a trailing site-name suffix when
// one is present and matches the resolved sitename.
func cleanTitle(raw, siteName string) string {
	title := strings.TrimSpace(domx.CollapseWhitespace(raw))
	if title == "" || siteName == "" {
		return title
	}

	lastSep := strings.LastIndexAny(title, titleSeparators)
	if lastSep < 0 {
		return title
	}
	_, sepLen := utf8.DecodeRuneInString(title[lastSep:])
	suffix := strings.TrimSpace(title[lastSep+sepLen:])
	if suffix == "" || len(suffix) > 50 {
		return title
	}
	if strings.ContainsAny(suffix, ".!?") {
		return title
	}
	if !sitenameSimilar(suffix, siteName) {
		return title
	}
	return strings.TrimSpace(title[:lastSep])
}

// sitenameSimilar reports whether suffix is the resolved sitename,
// tolerating the small cosmetic variants sites introduce between their
// og:site_name value and how they render it in a <title> suffix
// ("TechCrunch" vs "Tech Crunch"). Exact case-insensitive equality always
// matches; beyond that, an edit distance of at most 25% of the longer
// string's length is accepted, so on a short site name a longer addition
// such as "- US edition" does not match.
func sitenameSimilar(suffix, siteName string) bool {
	if strings.EqualFold(suffix, siteName) {
		return true
	}
	a, b := strings.ToLower(suffix), strings.ToLower(siteName)
	dist := levenshtein.ComputeDistance(a, b)
	longer := utf8.RuneCountInString(a)
	if utf8.RuneCountInString(b) > longer {
		longer = utf8.RuneCountInString(b)
	}
	if longer == 0 {
		return false
	}
	return float64(dist)/float64(longer) <= 0.25
}
