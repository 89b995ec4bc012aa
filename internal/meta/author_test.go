package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAuthor_StripsByPrefix(t *testing.T) {
	assert.Equal(t, "Jane Doe", cleanAuthor("By Jane Doe"))
	assert.Equal(t, "Jane Doe", cleanAuthor("Posted by Jane Doe"))
}

func TestCleanAuthor_StripsSingleLetterInitialPeriods(t *testing.T) {
	assert.Equal(t, "A B Smith", cleanAuthor("A. B. Smith"))
}

func TestCleanAuthor_RejectsPureDateValue(t *testing.T) {
	assert.Equal(t, "", cleanAuthor("2024-01-02"))
	assert.Equal(t, "", cleanAuthor("01/02/2024"))
}

func TestCleanAuthor_NormalizesListSeparators(t *testing.T) {
	assert.Equal(t, "Alice; Bob", cleanAuthor("Alice and Bob"))
	assert.Equal(t, "Alice; Bob", cleanAuthor("Alice, Bob"))
}

func TestCleanAuthor_StripsTrailingSocialHandle(t *testing.T) {
	got := cleanAuthor("Jane Doe | @janedoe")
	assert.Equal(t, "Jane Doe", got)
}
