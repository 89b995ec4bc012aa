// Package articlext extracts the main textual content and structured
// metadata from arbitrary HTML documents, discarding navigation,
// advertisements, comments, and other boilerplate.
//
// It is built for crawlers, search indexers, and LLM-ingestion pipelines
// that need one clean article representation per page. The library never
// fetches network resources and never renders JavaScript — it operates
// purely over HTML you already have in hand.
//
// # Basic usage
//
//	result, err := articlext.Extract(html, articlext.WithURL("https://example.com/a"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Metadata.Title)
//	fmt.Println(result.ContentText)
//
// # Byte input
//
// If you have raw bytes instead of a decoded string, use ExtractBytes —
// it runs charset detection and transcoding before parsing.
//
//	result, err := articlext.ExtractBytes(body, articlext.WithURL(pageURL))
//
// # Options
//
// Extraction behavior is tuned with functional options:
//
//	result, err := articlext.Extract(html,
//	    articlext.WithFavorPrecision(),
//	    articlext.WithIncludeImages(),
//	)
//
// # Errors
//
// Absence of content is never an error — ExtractResult.ContentText may
// legitimately be empty. Errors are returned only for hard failures:
// an undecodable byte stream, or an internal invariant violation.
//
//	var encErr *articlext.EncodingError
//	if errors.As(err, &encErr) {
//	    // could not settle on a charset
//	}
package articlext
