package decode

import "github.com/saintfish/chardet"

// minConfidence is the chardet confidence threshold below which a
// statistical guess is not trusted as a hypothesis.
const minConfidence = 80

// Decode detects data's character encoding and transcodes it to UTF-8.
// Detection tries, in order: a byte-order mark, a declared charset
// (content-type header value if known, else a <meta charset> scan of
// the document itself), then statistical detection. Invalid byte
// sequences in the chosen encoding decode to U+FFFD rather than
// failing. Decode only fails — returning ok=false — when none of the
// three sources yields a usable hypothesis.
func Decode(data []byte, declaredContentType string) (text string, ok bool) {
	if charset, skip := sniffBOM(data); charset != "" {
		if enc := ByName(charset); enc != nil {
			if out, err := enc.NewDecoder().Bytes(data[skip:]); err == nil {
				return string(out), true
			}
		}
	}

	if charset := charsetFromContentType(declaredContentType); charset != "" {
		if enc := ByName(charset); enc != nil {
			if out, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(out), true
			}
		}
	}

	if charset, found := sniffMetaCharset(data); found {
		if enc := ByName(charset); enc != nil {
			if out, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(out), true
			}
		}
	}

	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil && result.Confidence >= minConfidence {
		if enc := ByName(result.Charset); enc != nil {
			if out, derr := enc.NewDecoder().Bytes(data); derr == nil {
				return string(out), true
			}
		}
		// Detector is confident but we have no decoder table for the
		// charset it named (e.g. an exotic legacy codepage): treat the
		// bytes as already-UTF-8, which is the overwhelmingly common
		// case for modern web content and strictly better than failing.
		return string(data), true
	}

	return "", false
}

func charsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	m := contentTypeCharsetRE.FindStringSubmatch(contentType)
	if m == nil {
		return ""
	}
	return m[1]
}
