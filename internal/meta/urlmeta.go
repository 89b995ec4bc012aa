package meta

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolveURL applies the canonical-link -> og:url -> caller-supplied URL
// priority chain.
func resolveURL(doc *goquery.Document, callerURL string) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if og := metaContent(doc, "og:url"); og != "" {
		return og
	}
	return strings.TrimSpace(callerURL)
}

// hostnameOf derives hostname from a URL's authority. Never inferred
// from page text.
func hostnameOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
