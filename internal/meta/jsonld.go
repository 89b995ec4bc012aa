// Package meta resolves document metadata (title, author, date, sitename,
// URL, hostname, description, language, categories, tags, license, image,
// page type) from a prioritized list of sources, each with its own
// cleaning pipeline.
package meta

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jsonLDBlocks returns every <script type="application/ld+json"> payload
// on the page as a tolerant map, in document order. A single block that
// fails to parse is skipped; the others still contribute — no single
// malformed block aborts resolution.
func jsonLDBlocks(doc *goquery.Document) []map[string]any {
	var blocks []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		var raw any
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return
		}
		blocks = append(blocks, flattenJSONLD(raw)...)
	})
	return blocks
}

// flattenJSONLD normalizes a single parsed JSON-LD value into one or more
// flat node maps, expanding top-level arrays and @graph containers.
func flattenJSONLD(raw any) []map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			var out []map[string]any
			for _, g := range graph {
				if m, ok := g.(map[string]any); ok {
					out = append(out, m)
				}
			}
			return out
		}
		return []map[string]any{v}
	case []any:
		var out []map[string]any
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// jsonLDByType returns the first node among blocks whose @type (string or
// array of strings) matches one of wantTypes, case-insensitively.
func jsonLDByType(blocks []map[string]any, wantTypes ...string) map[string]any {
	want := map[string]bool{}
	for _, t := range wantTypes {
		want[strings.ToLower(t)] = true
	}
	for _, b := range blocks {
		if nodeMatchesType(b, want) {
			return b
		}
	}
	return nil
}

func nodeMatchesType(node map[string]any, want map[string]bool) bool {
	switch t := node["@type"].(type) {
	case string:
		return want[strings.ToLower(t)]
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && want[strings.ToLower(s)] {
				return true
			}
		}
	}
	return false
}

// jsonLDString reads a string field, tolerating the value being absent.
func jsonLDString(node map[string]any, key string) string {
	if node == nil {
		return ""
	}
	s, _ := node[key].(string)
	return strings.TrimSpace(s)
}

// jsonLDNestedName reads node[key].name, accepting either a single object
// or an array of objects (the JSON-LD author/publisher shapes) and
// returning the first name found.
func jsonLDNestedName(node map[string]any, key string) string {
	if node == nil {
		return ""
	}
	switch v := node[key].(type) {
	case map[string]any:
		return jsonLDString(v, "name")
	case []any:
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				if name := jsonLDString(m, "name"); name != "" {
					return name
				}
			}
		}
	case string:
		return strings.TrimSpace(v)
	}
	return ""
}

// jsonLDNestedNames is the plural form of jsonLDNestedName, collecting
// every name present instead of stopping at the first.
func jsonLDNestedNames(node map[string]any, key string) []string {
	if node == nil {
		return nil
	}
	var names []string
	switch v := node[key].(type) {
	case map[string]any:
		if n := jsonLDString(v, "name"); n != "" {
			names = append(names, n)
		}
	case []any:
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				if n := jsonLDString(m, "name"); n != "" {
					names = append(names, n)
				}
			}
		}
	case string:
		names = append(names, strings.TrimSpace(v))
	}
	return names
}
