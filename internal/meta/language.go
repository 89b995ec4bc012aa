package meta

import "github.com/PuerkitoBio/goquery"

// resolveLanguage applies the <html lang> -> og:locale ->
// content-language priority chain and normalizes to the primary subtag
// ("en-US" -> "en").
func resolveLanguage(doc *goquery.Document) string {
	raw := ""
	if v, ok := doc.Find("html").First().Attr("lang"); ok && v != "" {
		raw = v
	}
	if raw == "" {
		raw = metaContent(doc, "og:locale")
	}
	if raw == "" {
		raw = metaContent(doc, "content-language")
	}
	return primarySubtag(raw)
}

func primarySubtag(lang string) string {
	for i, r := range lang {
		if r == '-' || r == '_' {
			return lang[:i]
		}
	}
	return lang
}
