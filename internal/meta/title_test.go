package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle_StripsSiteNameSuffix(t *testing.T) {
	got := cleanTitle("Hello | Example Site", "Example Site")
	assert.Equal(t, "Hello", got)
}

func TestCleanTitle_PreservesInternalSeparators(t *testing.T) {
	got := cleanTitle("Part One | Part Two | Example Site", "Example Site")
	assert.Equal(t, "Part One | Part Two", got)
}

func TestCleanTitle_NeverTreatsColonAsSeparator(t *testing.T) {
	got := cleanTitle("Breaking: Something Happened", "Example Site")
	assert.Equal(t, "Breaking: Something Happened", got)
}

func TestCleanTitle_NoSuffixWhenSitenameUnknown(t *testing.T) {
	got := cleanTitle("Hello | Example Site", "")
	assert.Equal(t, "Hello | Example Site", got)
}

func TestCleanTitle_NoSuffixWhenSuffixHasSentencePunctuation(t *testing.T) {
	got := cleanTitle("Hello | This looks like a sentence.", "This looks like a sentence.")
	assert.Equal(t, "Hello | This looks like a sentence.", got)
}
