package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermetic-io/articlext/internal/domx"
)

func TestUnwrapLinks_PreservesTextDropsAnchors(t *testing.T) {
	doc, err := domx.ParseString(`<p>See <a href="https://example.com">our site</a> for details.</p>`)
	require.NoError(t, err)

	root := doc.Find("p").Get(0)
	UnwrapLinks(root, 1<<20)

	assert.Equal(t, 0, doc.Find("a").Length())
	html, err := domx.OuterHTML(root)
	require.NoError(t, err)
	assert.Contains(t, html, "our site")
}
