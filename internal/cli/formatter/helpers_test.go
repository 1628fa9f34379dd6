package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", PadRight("abc", 5))
	assert.Equal(t, "abcd…", PadRight("abcdefgh", 5))
	assert.Equal(t, "héllo", PadRight("héllo", 5), "widths count runes, not bytes")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
}
