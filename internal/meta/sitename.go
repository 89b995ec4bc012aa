package meta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolveSiteName applies og:site_name -> JSON-LD publisher.name ->
// meta[name=application-name] -> first hostname path segment
// capitalized.
func resolveSiteName(doc *goquery.Document, blocks []map[string]any, hostname string) string {
	if v := metaContent(doc, "og:site_name"); v != "" {
		return v
	}
	if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting"); node != nil {
		if v := jsonLDNestedName(node, "publisher"); v != "" {
			return v
		}
	}
	if v := metaContent(doc, "application-name"); v != "" {
		return v
	}
	if hostname == "" {
		return ""
	}
	segment := strings.TrimSuffix(hostname, ".com")
	segment = strings.TrimPrefix(segment, "www.")
	if idx := strings.Index(segment, "."); idx > 0 {
		segment = segment[:idx]
	}
	if segment == "" {
		return ""
	}
	return strings.ToUpper(segment[:1]) + segment[1:]
}
