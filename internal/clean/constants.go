// Package clean prunes known boilerplate from a document before content
// scoring, so the scorer never has to reason about navigation, ads, or
// comments.
package clean

import "regexp"

// removeTags lists elements removed outright, regardless of class/id.
var removeTags = []string{
	"script", "style", "noscript", "iframe", "svg", "canvas",
	"embed", "form", "input", "button", "select", "textarea",
	"nav", "aside",
}

// conditionalOutsideArticleTags are removed only when they have no
// ancestor <article> — header/footer inside an article are presumed
// to be part of the article itself (a byline block, an author footer).
var conditionalOutsideArticleTags = []string{"header", "footer"}

// boilerplateRE matches class/id values that mark known non-article
// chrome: share bars, ads, cookie banners, related-content rails, etc.
var boilerplateRE = regexp.MustCompile(`(?i)\b(share|social|comment(s)?|advert|sponsor|promo|subscribe|newsletter|cookie|consent|modal|popup|banner|masthead|menu|sidebar|breadcrumb|pagination|related|widget|footer|copyright|disqus)\b`)

// boilerplatePrecisionRE extends boilerplateRE with additional terms
// that are too aggressive for balanced/recall modes but reasonable
// under favor_precision's stricter posture.
var boilerplatePrecisionRE = regexp.MustCompile(`(?i)\b(share|social|comment(s)?|advert|sponsor|promo|subscribe|newsletter|cookie|consent|modal|popup|banner|masthead|menu|sidebar|breadcrumb|pagination|related|widget|footer|copyright|disqus|teaser|popular|recommend|trending|category)\b`)

// structuralContainers are preserved even when their class/id matches
// the boilerplate regex, unless every descendant would be removed too.
var structuralContainers = map[string]bool{
	"div": true, "section": true, "main": true, "article": true,
}
