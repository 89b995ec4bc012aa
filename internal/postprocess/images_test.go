package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermetic-io/articlext/internal/domx"
)

func TestCollect_ResolvesRelativeSrcAndFilename(t *testing.T) {
	doc, err := domx.ParseString(`<div><img src="/img/photo.jpg?w=200" alt="a photo"></div>`)
	require.NoError(t, err)

	root := doc.Find("div").Get(0)
	imgs := Collect(root, "https://example.com/articles/1", "", 1<<20)

	require.Len(t, imgs, 1)
	assert.Equal(t, "https://example.com/img/photo.jpg?w=200", imgs[0].Src)
	assert.Equal(t, "photo.jpg", imgs[0].Filename)
	assert.Equal(t, "a photo", imgs[0].Alt)
}

func TestCollect_HeroPrefersOGImage(t *testing.T) {
	doc, err := domx.ParseString(`<div>
		<img src="https://example.com/a.jpg" width="1200">
		<img src="https://example.com/b.jpg" width="100">
	</div>`)
	require.NoError(t, err)

	root := doc.Find("div").Get(0)
	imgs := Collect(root, "https://example.com", "https://example.com/b.jpg", 1<<20)

	require.Len(t, imgs, 2)
	assert.False(t, imgs[0].IsHero)
	assert.True(t, imgs[1].IsHero)
}

func TestCollect_HeroFallsBackToLargestWidth(t *testing.T) {
	doc, err := domx.ParseString(`<div>
		<img src="https://example.com/small.jpg" width="200">
		<img src="https://example.com/big.jpg" width="900">
	</div>`)
	require.NoError(t, err)

	root := doc.Find("div").Get(0)
	imgs := Collect(root, "https://example.com", "", 1<<20)

	require.Len(t, imgs, 2)
	assert.True(t, imgs[1].IsHero)
}

func TestCollect_CaptionFromNearestFigcaption(t *testing.T) {
	doc, err := domx.ParseString(`<div><figure><img src="x.jpg"><figcaption>A caption</figcaption></figure></div>`)
	require.NoError(t, err)

	root := doc.Find("div").Get(0)
	imgs := Collect(root, "", "", 1<<20)

	require.Len(t, imgs, 1)
	assert.Equal(t, "A caption", imgs[0].Caption)
}
