package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<p>héllo</p>")...)
	text, ok := Decode(data, "")
	require.True(t, ok)
	assert.Equal(t, "<p>héllo</p>", text)
}

func TestDecode_DeclaredContentTypeCharset(t *testing.T) {
	data := []byte("<p>plain ascii</p>")
	text, ok := Decode(data, "text/html; charset=windows-1252")
	require.True(t, ok)
	assert.Contains(t, text, "plain ascii")
}

func TestDecode_MetaCharsetTag(t *testing.T) {
	data := []byte(`<html><head><meta charset="utf-8"></head><body>hi</body></html>`)
	text, ok := Decode(data, "")
	require.True(t, ok)
	assert.Contains(t, text, "hi")
}

func TestDecode_PlainASCIIFallsThroughToChardet(t *testing.T) {
	data := []byte("Just some plain English text with no declared charset at all, long enough to classify confidently.")
	text, ok := Decode(data, "")
	require.True(t, ok)
	assert.Contains(t, text, "Just some plain English text")
}

func TestByName_UnknownCharsetReturnsNil(t *testing.T) {
	assert.Nil(t, ByName("not-a-real-charset"))
}

func TestByName_CommonAliases(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF8", "iso-8859-1", "latin1", "windows-1252", "cp1252", "shift-jis", "gb2312", "big5", "euc-kr"} {
		assert.NotNil(t, ByName(name), "expected a decoder for %s", name)
	}
}
