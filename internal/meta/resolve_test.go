package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermetic-io/articlext/internal/domx"
)

func TestResolve_JSONLDAuthorArrayAndDate(t *testing.T) {
	doc, err := domx.ParseString(`<html><head>
		<script type="application/ld+json">
		{"@type":"Article","author":[{"name":"A. B. Smith"}],"datePublished":"2024-01-02T03:04:05Z"}
		</script>
	</head><body><article><p>content</p></article></body></html>`)
	require.NoError(t, err)

	md, ok := Resolve(doc, Params{MaxTreeDepth: 155})
	require.True(t, ok)
	assert.Equal(t, "A B Smith", md.Author)
	assert.Contains(t, md.Date, "2024-01-02")
}

func TestResolve_TitlePrefersOGOverTitleTag(t *testing.T) {
	doc, err := domx.ParseString(`<html><head>
		<meta property="og:title" content="Real Title">
		<title>Real Title — Site</title>
	</head><body></body></html>`)
	require.NoError(t, err)

	md, ok := Resolve(doc, Params{MaxTreeDepth: 155})
	require.True(t, ok)
	assert.Equal(t, "Real Title", md.Title)
}

func TestResolve_HostnameDerivedFromURL(t *testing.T) {
	doc, err := domx.ParseString(`<html><body></body></html>`)
	require.NoError(t, err)

	md, ok := Resolve(doc, Params{URL: "https://example.com/a/b", MaxTreeDepth: 155})
	require.True(t, ok)
	assert.Equal(t, "example.com", md.Hostname)
}

func TestResolve_LanguageMismatchSignalsFalse(t *testing.T) {
	doc, err := domx.ParseString(`<html lang="fr"><body></body></html>`)
	require.NoError(t, err)

	_, ok := Resolve(doc, Params{TargetLanguage: "en", MaxTreeDepth: 155})
	assert.False(t, ok)
}

func TestResolve_TagsDedupedCaseInsensitively(t *testing.T) {
	doc, err := domx.ParseString(`<html><head>
		<meta name="keywords" content="go, Go, testing">
	</head><body></body></html>`)
	require.NoError(t, err)

	md, ok := Resolve(doc, Params{MaxTreeDepth: 155})
	require.True(t, ok)
	require.Len(t, md.Tags, 2)
	assert.Equal(t, "go", md.Tags[0])
}
