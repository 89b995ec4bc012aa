package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermetic-io/articlext/internal/domx"
)

func TestClean_RemovesFixedTagsAndComments(t *testing.T) {
	doc, err := domx.ParseString(`<html><body>
		<script>evil()</script>
		<style>.x{}</style>
		<nav>site nav</nav>
		<!-- a comment -->
		<article><p>Keep this paragraph of real content.</p></article>
	</body></html>`)
	require.NoError(t, err)

	Clean(doc, false, false, 155)

	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, 0, doc.Find("style").Length())
	assert.Equal(t, 0, doc.Find("nav").Length())
	assert.Contains(t, doc.Find("article").Text(), "Keep this paragraph")
}

func TestClean_PreservesCommentsWhenIncludeCommentsTrue(t *testing.T) {
	doc, err := domx.ParseString(`<html><body><article><p>content</p><!-- user comment --></article></body></html>`)
	require.NoError(t, err)

	Clean(doc, true, false, 155)

	html, err := domx.OuterHTML(doc.Root)
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, "user comment"))
}

func TestClean_HeaderFooterOutsideArticleRemoved(t *testing.T) {
	doc, err := domx.ParseString(`<html><body>
		<header>site header</header>
		<article><header>article byline</header><p>real content here</p></article>
		<footer>site footer</footer>
	</body></html>`)
	require.NoError(t, err)

	Clean(doc, false, false, 155)

	assert.Equal(t, 0, doc.Find("body > header").Length())
	assert.Equal(t, 0, doc.Find("footer").Length())
	assert.Equal(t, 1, doc.Find("article header").Length())
}

func TestClean_RemovesBoilerplateByClass(t *testing.T) {
	doc, err := domx.ParseString(`<html><body><article>
		<div class="social-share">Share this</div>
		<p>Actual article text that should survive cleaning.</p>
	</article></body></html>`)
	require.NoError(t, err)

	Clean(doc, false, false, 155)

	assert.Equal(t, 0, doc.Find(".social-share").Length())
	assert.Contains(t, doc.Find("article").Text(), "Actual article text")
}

func TestBoilerplateRegexp_PrecisionAddsMoreTerms(t *testing.T) {
	balanced := BoilerplateRegexp(false)
	precision := BoilerplateRegexp(true)

	assert.False(t, balanced.MatchString("trending"))
	assert.True(t, precision.MatchString("trending"))
}
