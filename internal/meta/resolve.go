package meta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hermetic-io/articlext/internal/domx"
)

// Metadata holds the resolved, cleaned document metadata. It mirrors the
// public result shape one-for-one so the root package can copy it
// field-by-field without this package depending on the root package.
type Metadata struct {
	Title       string
	Author      string
	Date        string
	Description string
	SiteName    string
	URL         string
	Hostname    string
	Image       string
	Language    string
	License     string
	PageType    string
	Categories  []string
	Tags        []string
}

// Params carries the inputs Resolve needs beyond the parsed document.
type Params struct {
	URL             string
	TargetLanguage  string
	AuthorBlacklist []string
	// MainContent, when non-nil, scopes the h1/byline/time/image lookups
	// that prefer the main-content subtree over the whole document.
	MainContent *goquery.Selection
	// MaxTreeDepth bounds every descendant walk the resolver performs
	// (byline/date class scans, heading/title text extraction) against
	// pathological nesting.
	MaxTreeDepth int
}

// Resolve walks the document once, applying each field's prioritized
// source chain and cleaning pipeline. The returned bool is false when a
// target language was requested and the resolved language differs —
// callers should treat that as an empty-result signal, not an error.
func Resolve(doc *domx.Document, p Params) (Metadata, bool) {
	blocks := jsonLDBlocks(doc.GQ)

	resolvedURL := resolveURL(doc.GQ, p.URL)
	hostname := hostnameOf(resolvedURL)
	siteName := resolveSiteName(doc.GQ, blocks, hostname)
	title := resolveTitle(doc.GQ, blocks, p.MainContent, siteName, p.MaxTreeDepth)
	author := resolveAuthor(doc.GQ, blocks, p.MainContent, p.AuthorBlacklist, p.MaxTreeDepth)
	date := resolveDate(doc.GQ, blocks, p.MainContent, p.MaxTreeDepth)
	description := resolveDescription(doc.GQ)
	language := resolveLanguage(doc.GQ)
	image := resolveImage(doc.GQ, p.MainContent, resolvedURL)
	license := resolveLicense(doc.GQ, blocks)
	pageType := resolvePageType(doc.GQ, blocks)

	categories := resolveCategories(blocks, metaContent(doc.GQ, "article:section"))
	tags := resolveTags(
		blocks,
		metaContent(doc.GQ, "keywords"),
		metaContent(doc.GQ, "article:tag"),
		relTagTexts(doc.GQ),
	)

	md := Metadata{
		Title:       title,
		Author:      author,
		Date:        date,
		Description: description,
		SiteName:    siteName,
		URL:         resolvedURL,
		Hostname:    hostname,
		Image:       image,
		Language:    language,
		License:     license,
		PageType:    pageType,
		Categories:  categories,
		Tags:        tags,
	}

	if p.TargetLanguage != "" && language != "" && !strings.EqualFold(language, p.TargetLanguage) {
		return md, false
	}
	return md, true
}

func relTagTexts(doc *goquery.Document) []string {
	var out []string
	doc.Find(`a[rel="tag"]`).Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}
