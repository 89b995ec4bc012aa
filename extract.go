package articlext

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/clean"
	"github.com/hermetic-io/articlext/internal/decode"
	"github.com/hermetic-io/articlext/internal/domx"
	"github.com/hermetic-io/articlext/internal/fallback"
	"github.com/hermetic-io/articlext/internal/meta"
	"github.com/hermetic-io/articlext/internal/postprocess"
	"github.com/hermetic-io/articlext/internal/score"
)

// shortOutputThreshold is the combined content-text length below which
// the density-based fallback extractor is given a chance to do better.
const shortOutputThreshold = 250

// Extract parses an already-decoded HTML string and returns the extracted
// article content and metadata. No charset detection runs on the string.
// It never returns an error for malformed markup — the underlying parser
// repairs it.
func Extract(htmlSource string, opts ...Option) (*ExtractResult, error) {
	// A leading UTF-8 byte-order mark makes the decoder read the string
	// as UTF-8 instead of sniffing a charset.
	data := make([]byte, 0, len(htmlSource)+3)
	data = append(data, 0xEF, 0xBB, 0xBF)
	data = append(data, htmlSource...)
	return ExtractBytes(data, opts...)
}

// ExtractBytes is Extract for raw bytes of unknown encoding. The bytes
// are decoded using BOM/meta sniffing and statistical detection alone,
// since no Content-Type header is available at this layer; an
// *EncodingError is returned when none of these yields a charset.
func ExtractBytes(data []byte, opts ...Option) (*ExtractResult, error) {
	o := resolve(opts)

	text, ok := decode.Decode(data, "")
	if !ok {
		return nil, &EncodingError{Op: "decode"}
	}

	doc, err := domx.ParseString(text)
	if err != nil {
		return nil, &ParseError{Op: "parse", Err: err}
	}

	mainRoot := score.SelectRoot(doc, o.MaxTreeDepth)
	md, langOK := meta.Resolve(doc, meta.Params{
		URL:             o.URL,
		TargetLanguage:  o.TargetLanguage,
		AuthorBlacklist: o.AuthorBlacklist,
		MainContent:     mainRoot,
		MaxTreeDepth:    o.MaxTreeDepth,
	})
	if !langOK {
		return &ExtractResult{Metadata: toPublicMetadata(md)}, nil
	}

	// Snapshot the document before the cleaner and scorer start mutating
	// it in place, so the fallback extractor (if needed) can run against
	// an untouched copy rather than whatever the main pipeline left behind.
	snapshot, err := domx.OuterHTML(doc.Root)
	if err != nil {
		return nil, &ParseError{Op: "snapshot", Err: err}
	}

	clean.Clean(doc, o.IncludeComments, o.FavorPrecision, o.MaxTreeDepth)

	content, found := score.Extract(doc, o.IncludeTables, o.FavorPrecision, o.FavorRecall, o.MaxTreeDepth)

	if (!found || domx.TextLength(selectionOf(content), o.MaxTreeDepth) < shortOutputThreshold) && o.UseReadabilityFallback {
		if fbDoc, err := domx.ParseString(snapshot); err == nil {
			clean.Clean(fbDoc, o.IncludeComments, o.FavorPrecision, o.MaxTreeDepth)
			if fbContent, fbFound := fallback.Extract(fbDoc, o.MaxTreeDepth); fbFound {
				if !found || domx.TextLength(selectionOf(fbContent), o.MaxTreeDepth) > domx.TextLength(selectionOf(content), o.MaxTreeDepth) {
					content, found = fbContent, true
				}
			}
		}
	}

	result := &ExtractResult{Metadata: toPublicMetadata(md)}
	if !found || content == nil {
		return result, nil
	}

	if o.Deduplicate {
		postprocess.Deduplicate(content, o.MaxTreeDepth)
	}
	if !o.IncludeLinks {
		postprocess.UnwrapLinks(content, o.MaxTreeDepth)
	}

	if o.IncludeComments {
		result.CommentsText, result.CommentsHTML = postprocess.Comments(content, o.MaxTreeDepth)
	}

	result.ContentText = postprocess.PlainText(content, o.MaxTreeDepth)
	if htmlFrag, err := postprocess.HTMLFragment(content); err == nil {
		result.ContentHTML = htmlFrag
	}

	if o.IncludeImages {
		for _, img := range postprocess.Collect(content, md.URL, md.Image, o.MaxTreeDepth) {
			result.Images = append(result.Images, ImageData{
				Src:      img.Src,
				Filename: img.Filename,
				Alt:      img.Alt,
				Caption:  img.Caption,
				IsHero:   img.IsHero,
			})
		}
	}

	return result, nil
}

// selectionOf wraps a detached node for text-length measurement. A nil
// node yields an empty selection rather than panicking.
func selectionOf(n *html.Node) *goquery.Selection {
	if n == nil {
		return &goquery.Selection{}
	}
	return goquery.NewDocumentFromNode(n).Selection
}

func toPublicMetadata(m meta.Metadata) Metadata {
	return Metadata{
		Title:       m.Title,
		Author:      m.Author,
		Date:        m.Date,
		Description: m.Description,
		SiteName:    m.SiteName,
		URL:         m.URL,
		Hostname:    m.Hostname,
		Image:       m.Image,
		Language:    m.Language,
		License:     m.License,
		PageType:    m.PageType,
		Categories:  nonNil(m.Categories),
		Tags:        nonNil(m.Tags),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
