package decode

import (
	"regexp"
)

const metaScanWindow = 4096

// metaCharsetRE matches <meta charset="..."> and the charset parameter
// of <meta http-equiv="content-type" content="...; charset=...">.
var metaCharsetRE = regexp.MustCompile(`(?is)<meta[^>]+charset\s*=\s*["']?([a-zA-Z0-9_-]+)`)

// contentTypeCharsetRE extracts the charset parameter from a Content-Type
// header value, e.g. "text/html; charset=UTF-8".
var contentTypeCharsetRE = regexp.MustCompile(`(?i)charset\s*=\s*["']?([a-zA-Z0-9_-]+)`)

// sniffMetaCharset scans the first metaScanWindow bytes of data for a
// declared charset in a <meta> tag.
func sniffMetaCharset(data []byte) (charset string, ok bool) {
	window := data
	if len(window) > metaScanWindow {
		window = window[:metaScanWindow]
	}
	m := metaCharsetRE.FindSubmatch(window)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}
