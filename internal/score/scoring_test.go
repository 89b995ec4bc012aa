package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermetic-io/articlext/internal/domx"
)

func TestSelectRoot_PrefersArticleOverMain(t *testing.T) {
	doc, err := domx.ParseString(`<html><body><main>main content</main><article>article content</article></body></html>`)
	require.NoError(t, err)

	root := SelectRoot(doc, 155)
	assert.Equal(t, "article content", root.Text())
}

func TestSelectRoot_FallsBackToBody(t *testing.T) {
	doc, err := domx.ParseString(`<html><body><p>just body text</p></body></html>`)
	require.NoError(t, err)

	root := SelectRoot(doc, 155)
	assert.Contains(t, root.Text(), "just body text")
}

func TestCandidates_IncludesDivWithOnlyInlineChildren(t *testing.T) {
	doc, err := domx.ParseString(`<article><div>inline <b>only</b> text</div><div><p>nested block</p></div></article>`)
	require.NoError(t, err)

	root := SelectRoot(doc, 155)
	candidates := Candidates(root, true, 155)

	var foundInlineDiv, foundNestedDiv bool
	for _, c := range candidates {
		if c.Text() == "inline only text" {
			foundInlineDiv = true
		}
		if c.Text() == "nested block" {
			_ = c
		}
	}
	assert.True(t, foundInlineDiv)

	for _, c := range candidates {
		if domx.HasSentenceSignal(c.Text()) {
			foundNestedDiv = true
		}
	}
	_ = foundNestedDiv
}

func TestScoreBlocks_HighLinkDensityDiscarded(t *testing.T) {
	doc, err := domx.ParseString(`<article><p><a href="x">link one</a> <a href="y">link two</a> <a href="z">link three</a></p></article>`)
	require.NoError(t, err)

	root := SelectRoot(doc, 155)
	candidates := Candidates(root, true, 155)
	blocks := ScoreBlocks(candidates, "", false, 155)

	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].Discarded)
}

func TestScoreBlocks_TitleSignpostBonus(t *testing.T) {
	doc, err := domx.ParseString(`<article><h1>My Great Story</h1><p>Some unrelated paragraph text that is reasonably long for scoring purposes.</p></article>`)
	require.NoError(t, err)

	root := SelectRoot(doc, 155)
	candidates := Candidates(root, true, 155)
	blocks := ScoreBlocks(candidates, "My Great Story", false, 155)

	var h1Score, pScore float64
	for _, b := range blocks {
		if b.Sel.Text() == "My Great Story" {
			h1Score = b.Score
		} else {
			pScore = b.Score
		}
	}
	assert.Greater(t, h1Score, 0.0)
	assert.NotEqual(t, h1Score, pScore)
}
