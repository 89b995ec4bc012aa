package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermetic-io/articlext/internal/domx"
)

func TestExtract_PicksDenserContentBlock(t *testing.T) {
	doc, err := domx.ParseString(`<html><body>
		<div class="sidebar"><a href="x">link</a> <a href="y">link</a> <a href="z">link</a></div>
		<div class="content">This is a long run of genuine article prose with no links at all, meant to win on density.</div>
	</body></html>`)
	require.NoError(t, err)

	node, found := Extract(doc, 155)
	require.True(t, found)

	html, err := domx.OuterHTML(node)
	require.NoError(t, err)
	assert.Contains(t, html, "genuine article prose")
}

func TestExtract_EmptyDocumentNotFound(t *testing.T) {
	doc, err := domx.ParseString(`<html><body></body></html>`)
	require.NoError(t, err)

	_, found := Extract(doc, 155)
	assert.False(t, found)
}

func TestExtract_ClimbsToParentWhenProportional(t *testing.T) {
	doc, err := domx.ParseString(`<html><body><div class="article">
		<p>A solid paragraph of real content that should anchor the density scorer's starting point nicely.</p>
		<p>Another solid paragraph continuing the same article, proportionally adding both text and score.</p>
	</div></body></html>`)
	require.NoError(t, err)

	node, found := Extract(doc, 155)
	require.True(t, found)

	html, err := domx.OuterHTML(node)
	require.NoError(t, err)
	assert.Contains(t, html, "anchor the density scorer")
	assert.Contains(t, html, "Another solid paragraph")
}
