package meta

import "strings"

// resolveCategories applies the JSON-LD articleSection ->
// meta[property=article:section] priority chain, deduplicating while
// preserving first occurrence.
func resolveCategories(blocks []map[string]any, sectionMeta string) []string {
	var raw []string
	if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting"); node != nil {
		raw = append(raw, jsonLDNestedNames(node, "articleSection")...)
		if len(raw) == 0 {
			if v := jsonLDString(node, "articleSection"); v != "" {
				raw = append(raw, v)
			}
		}
	}
	if len(raw) == 0 && sectionMeta != "" {
		raw = append(raw, sectionMeta)
	}
	return dedupePreserveOrder(raw)
}

// resolveTags applies the JSON-LD keywords -> meta[name=keywords] ->
// meta[property=article:tag] -> a[rel=tag] priority chain.
func resolveTags(blocks []map[string]any, keywordsMeta, articleTagMeta string, relTagTexts []string) []string {
	var raw []string
	if node := jsonLDByType(blocks, "Article", "NewsArticle", "BlogPosting"); node != nil {
		raw = append(raw, splitKeywords(node["keywords"])...)
	}
	if len(raw) == 0 && keywordsMeta != "" {
		raw = append(raw, splitCommaList(keywordsMeta)...)
	}
	if len(raw) == 0 && articleTagMeta != "" {
		raw = append(raw, splitCommaList(articleTagMeta)...)
	}
	if len(raw) == 0 {
		raw = append(raw, relTagTexts...)
	}
	return dedupePreserveOrder(raw)
}

func splitKeywords(v any) []string {
	switch k := v.(type) {
	case string:
		return splitCommaList(k)
	case []any:
		var out []string
		for _, e := range k {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	return nil
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dedupePreserveOrder(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range in {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
