package meta

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hermetic-io/articlext/internal/domx"
)

const heroMinWidth = 400

var heroClassRE = regexp.MustCompile(`(?i)\b(hero|lead|featured)\b`)

// resolveImage applies the og:image -> twitter:image -> first qualifying
// <img> in the main content priority chain, resolving the result
// against documentURL.
func resolveImage(doc *goquery.Document, mainContent *goquery.Selection, documentURL string) string {
	raw := firstMetaContent(doc, "og:image", "twitter:image")
	if raw == "" && mainContent != nil {
		mainContent.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			n := img.Get(0)
			width := 0
			if w, ok := domx.Attr(n, "width"); ok {
				width, _ = strconv.Atoi(strings.TrimSpace(w))
			}
			class, _ := domx.Attr(n, "class")
			if width >= heroMinWidth || heroClassRE.MatchString(class) {
				raw, _ = domx.Attr(n, "src")
				return false
			}
			return true
		})
	}
	if raw == "" {
		return ""
	}
	return resolveAgainst(documentURL, raw)
}

func resolveAgainst(documentURL, raw string) string {
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if documentURL == "" || ref.IsAbs() {
		return ref.String()
	}
	base, err := url.Parse(documentURL)
	if err != nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// resolvePageType reads og:type, falling back to the JSON-LD @type of
// the first recognized article node.
func resolvePageType(doc *goquery.Document, blocks []map[string]any) string {
	if v := metaContent(doc, "og:type"); v != "" {
		return v
	}
	if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting", "WebPage", "Product"); node != nil {
		if t, ok := node["@type"].(string); ok {
			return t
		}
	}
	return ""
}
