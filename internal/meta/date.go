package meta

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-dateparser"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// datePublishedMetaTags covers the long tail of publish-date meta
// conventions beyond the Open Graph standard.
var datePublishedMetaTags = []string{
	"article:published_time",
	"pubdate",
	"publishdate",
	"sailthru.date",
	"pdate",
	"date",
	"dc.date.issued",
	"dc.date",
	"parsely-pub-date",
	"publish-date",
	"publish_date",
	"release_date",
	"original-publish-date",
}

var (
	datePrefixRE  = regexp.MustCompile(`(?i)^\s*(published|updated|posted)\s*:?\s*`)
	ordinalRE     = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)
	dateClassRE   = regexp.MustCompile(`(?i)\b(date|publish|time)\b`)
	explicitTZDir = &dateparser.Configuration{}
)

// resolveDate applies the JSON-LD -> meta -> <time> -> free-text class
// priority chain and returns an ISO 8601 string, or "" if nothing
// parses. maxDepth bounds the free-text class scan against pathological
// nesting.
func resolveDate(doc *goquery.Document, blocks []map[string]any, mainContent *goquery.Selection, maxDepth int) string {
	raw := ""
	if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting"); node != nil {
		for _, key := range []string{"datePublished", "dateCreated", "dateModified"} {
			if v := jsonLDString(node, key); v != "" {
				raw = v
				break
			}
		}
	}
	if raw == "" {
		raw = firstMetaContent(doc, datePublishedMetaTags...)
	}
	if raw == "" {
		scope := doc.Selection
		if mainContent != nil && mainContent.Length() > 0 {
			scope = mainContent
		}
		if t := scope.Find("time[datetime]").First(); t.Length() > 0 {
			raw, _ = t.Attr("datetime")
		}
	}
	if raw == "" {
		raw = findDateByClass(doc, mainContent, maxDepth)
	}
	if raw == "" {
		return ""
	}

	if parsed, ok := parseDate(raw); ok {
		return parsed
	}
	return ""
}

func findDateByClass(doc *goquery.Document, mainContent *goquery.Selection, maxDepth int) string {
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
		if class == "" || !dateClassRE.MatchString(class) {
			return
		}
		text := strings.TrimSpace(domx.TextOf(n, maxDepth))
		if text != "" {
			found = text
		}
	})
	return found
}

// normalizeDateText strips ordinal suffixes and published/updated
// prefixes and normalizes ALL-CAPS month names to title case, matching
// the forms the parser accepts.
func normalizeDateText(raw string) string {
	text := datePrefixRE.ReplaceAllString(strings.TrimSpace(raw), "")
	text = ordinalRE.ReplaceAllString(text, "$1")
	return titleCaseMonths(text)
}

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
	"Jan", "Feb", "Mar", "Apr", "Jun", "Jul", "Aug", "Sep", "Sept", "Oct", "Nov", "Dec",
}

// monthREs holds one case-insensitive whole-word pattern per entry of
// months, compiled once at package load.
var monthREs = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(months))
	for i, m := range months {
		res[i] = regexp.MustCompile(`(?i)\b` + m + `\b`)
	}
	return res
}()

func titleCaseMonths(text string) string {
	for i, re := range monthREs {
		text = re.ReplaceAllString(text, months[i])
	}
	return text
}

// parseDate tries Go's reference layouts first (cheap, unambiguous for
// ISO/RFC forms), then falls back to go-dateparser for the long-form,
// European, and compact formats the layout table doesn't cover. When
// more than one layout matches, the one that carried an explicit
// timezone wins.
func parseDate(raw string) (string, bool) {
	text := normalizeDateText(raw)

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z0700",
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822Z,
		time.RFC822,
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01/02/2006",
		"02.01.2006",
		"02/01/2006",
		"20060102",
		"January 2, 2006",
		"2 January 2006",
	}

	var best time.Time
	var bestHasTZ bool
	found := false
	for _, layout := range layouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		hasTZ := strings.Contains(layout, "Z0700") || strings.Contains(layout, "Z07:00") || strings.Contains(layout, "-0700")
		if !found || (hasTZ && !bestHasTZ) {
			best, bestHasTZ, found = t, hasTZ, true
		}
	}
	if found {
		return best.Format(time.RFC3339), true
	}

	parsed, err := dateparser.Parse(explicitTZDir, text)
	if err != nil || parsed == nil {
		return "", false
	}
	return parsed.Time.Format(time.RFC3339), true
}
