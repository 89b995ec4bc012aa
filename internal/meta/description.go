package meta

import "github.com/PuerkitoBio/goquery"

// resolveDescription applies the og:description -> twitter:description ->
// meta[name=description] priority chain.
func resolveDescription(doc *goquery.Document) string {
	return firstMetaContent(doc, "og:description", "twitter:description", "description")
}
