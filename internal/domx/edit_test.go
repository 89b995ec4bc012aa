package domx

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_DetachesNode(t *testing.T) {
	doc, err := ParseString(`<div><p id="a">keep</p><p id="b">drop</p></div>`)
	require.NoError(t, err)

	drop := doc.Find(`#b`).Get(0)
	Remove(drop)

	assert.Equal(t, 0, doc.Find(`#b`).Length())
	assert.Equal(t, 1, doc.Find(`#a`).Length())
}

func TestUnwrap_PreservesTextDropsTag(t *testing.T) {
	doc, err := ParseString(`<p>before <a href="x">link text</a> after</p>`)
	require.NoError(t, err)

	a := doc.Find("a").Get(0)
	Unwrap(a)

	assert.Equal(t, 0, doc.Find("a").Length())
	html, err := OuterHTML(doc.Find("p").Get(0))
	require.NoError(t, err)
	assert.Contains(t, html, "link text")
	assert.NotContains(t, html, "<a")
}

func TestPrune_CollectThenApply(t *testing.T) {
	doc, err := ParseString(`<div><p class="keep">a</p><p class="drop">b</p><p class="keep">c</p></div>`)
	require.NoError(t, err)

	var nodes []NodeID
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, s.Get(0))
	})
	require.Len(t, nodes, 3)

	Prune(nodes, func(n NodeID) bool {
		class, _ := Attr(n, "class")
		return class == "keep"
	})

	assert.Equal(t, 2, doc.Find("p").Length())
	assert.Equal(t, 0, doc.Find("p.drop").Length())
}

func TestCloneSubtree_IsDetachedAndIndependent(t *testing.T) {
	doc, err := ParseString(`<div id="root"><p>hello <b>world</b></p></div>`)
	require.NoError(t, err)

	root := doc.Find("#root").Get(0)
	clone := CloneSubtree(root, 155)

	assert.Nil(t, clone.Parent)
	html, err := OuterHTML(clone)
	require.NoError(t, err)
	assert.Contains(t, html, "hello")
	assert.Contains(t, html, "<b>world</b>")

	Remove(doc.Find("b").Get(0))
	html, err = OuterHTML(clone)
	require.NoError(t, err)
	assert.Contains(t, html, "<b>world</b>", "clone must be unaffected by mutation of the source tree")
}
