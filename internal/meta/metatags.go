package meta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaContent returns the content of the first meta tag matching
// attr="name" (checking both name= and property= forms, since sites mix
// the two conventions for Open Graph/Twitter/Dublin Core tags).
func metaContent(doc *goquery.Document, name string) string {
	if v, ok := doc.Find(`meta[name="` + name + `"]`).Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[property="` + name + `"]`).Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return ""
}

// firstMetaContent tries each name in order and returns the first hit.
func firstMetaContent(doc *goquery.Document, names ...string) string {
	for _, n := range names {
		if v := metaContent(doc, n); v != "" {
			return v
		}
	}
	return ""
}
