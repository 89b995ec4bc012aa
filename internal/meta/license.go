package meta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolveLicense applies the <link rel=license> -> <a rel=license> ->
// JSON-LD license priority chain.
func resolveLicense(doc *goquery.Document, blocks []map[string]any) string {
	if href, ok := doc.Find(`link[rel="license"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if href, ok := doc.Find(`a[rel="license"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting"); node != nil {
		if v := jsonLDString(node, "license"); v != "" {
			return v
		}
	}
	return ""
}
