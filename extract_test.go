package articlext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_BasicArticleWithNav(t *testing.T) {
	html := `<html><head><title>Hello | Site</title></head><body><nav>Home</nav>` +
		`<article><h1>Hello</h1>` +
		`<p>First paragraph with enough text to score.</p>` +
		`<p>Second paragraph with more content here.</p>` +
		`</article></body></html>`

	result, err := Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "Hello", result.Metadata.Title)
	assert.True(t, strings.HasPrefix(result.ContentText, "First paragraph"))
	assert.Contains(t, result.ContentText, "Second paragraph")
	assert.NotContains(t, result.ContentText, "Home")
	assert.NotContains(t, result.ContentText, "Hello |")
}

func TestExtract_MalformedHTMLNeverErrors(t *testing.T) {
	inputs := []string{
		`<html><body><p>unclosed`,
		`<table><tr><td>nested<table><tr><td>deep</table></table>`,
		`</body></html><p>stray content</p>`,
	}
	for _, in := range inputs {
		_, err := Extract(in)
		assert.NoError(t, err)
	}
}

func TestExtract_JSONLDAuthorAndDate(t *testing.T) {
	html := `<html><body>
		<script type="application/ld+json">
		{"@type":"Article","author":[{"name":"A. B. Smith"}],"datePublished":"2024-01-02T03:04:05Z"}
		</script>
		<article><p>Some article body text that is long enough to be kept by the scorer.</p></article>
	</body></html>`

	result, err := Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "A B Smith", result.Metadata.Author)
	assert.Contains(t, result.Metadata.Date, "2024-01-02")
}

func TestExtract_OGTitleWinsOverTitleTag(t *testing.T) {
	html := `<html><head><meta property="og:title" content="Real Title"><title>Real Title — Site</title></head>` +
		`<body><article><p>Enough content in the article body to be extracted properly here.</p></article></body></html>`

	result, err := Extract(html)
	require.NoError(t, err)
	assert.Equal(t, "Real Title", result.Metadata.Title)
}

func TestExtract_ContentTextNeverContainsHTMLTags(t *testing.T) {
	html := `<html><body><article><p>Text with <b>bold</b> and <i>italic</i> inline markup here.</p></article></body></html>`

	result, err := Extract(html)
	require.NoError(t, err)
	assert.NotContains(t, result.ContentText, "<")
}

func TestExtract_HostnameMatchesURLAuthority(t *testing.T) {
	html := `<html><body><article><p>Some reasonably long paragraph of article content for extraction.</p></article></body></html>`

	result, err := Extract(html, WithURL("https://example.com/a/b"))
	require.NoError(t, err)
	assert.Equal(t, "example.com", result.Metadata.Hostname)
}

func TestExtract_ImagesEmptyWhenNotRequested(t *testing.T) {
	html := `<html><body><article><p>text</p><img src="a.jpg"></article></body></html>`

	result, err := Extract(html)
	require.NoError(t, err)
	assert.Empty(t, result.Images)
}

func TestExtract_ImagesCollectedWhenRequested(t *testing.T) {
	html := `<html><body><article><p>Enough article text to be retained by the scorer for this test case. ` +
		`<img src="https://example.com/a.jpg" width="900"></p></article></body></html>`

	result, err := Extract(html, WithIncludeImages())
	require.NoError(t, err)
	require.Len(t, result.Images, 1)
	assert.Equal(t, "https://example.com/a.jpg", result.Images[0].Src)
}

func TestExtract_TargetLanguageMismatchYieldsEmptyResult(t *testing.T) {
	html := `<html lang="fr"><body><article><p>Du texte en français assez long pour être retenu.</p></article></body></html>`

	result, err := Extract(html, WithTargetLanguage("en"))
	require.NoError(t, err)
	assert.Empty(t, result.ContentText)
}

func TestExtract_EmptyDocumentYieldsEmptyContentNoError(t *testing.T) {
	result, err := Extract(`<html><body></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, result.ContentText)
}

func TestExtract_LinksUnwrappedByDefault(t *testing.T) {
	html := `<html><body><article><p>See <a href="https://x.test">our site</a> for more, and additional filler text.</p></article></body></html>`

	result, err := Extract(html)
	require.NoError(t, err)
	assert.Contains(t, result.ContentText, "our site")
	assert.NotContains(t, result.ContentText, "<a")
}

func TestDefaultOptions_MatchDocumentedDefaults(t *testing.T) {
	o := DefaultOptions()
	assert.True(t, o.IncludeTables)
	assert.True(t, o.UseReadabilityFallback)
	assert.True(t, o.Deduplicate)
	assert.False(t, o.IncludeImages)
	assert.False(t, o.IncludeLinks)
	assert.Equal(t, 155, o.MaxTreeDepth)
}

func TestResolve_PrecisionWinsOverRecallWhenBothSet(t *testing.T) {
	o := resolve([]Option{WithFavorPrecision(), WithFavorRecall()})
	assert.True(t, o.FavorPrecision)
	assert.False(t, o.FavorRecall)
}
