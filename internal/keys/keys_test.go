package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/radixart/internal/keys"
)

func TestFromStringNormalizesEquivalentForms(t *testing.T) {
	// U+00E9 (precomposed e-acute) versus U+0065 U+0301 (plain e followed
	// by a combining acute accent): two different byte sequences that
	// render identically and must normalize to the same key.
	precomposed := "café"
	decomposed := "café"

	assert.NotEqual(t, precomposed, decomposed, "the two Go strings must differ byte-for-byte")
	assert.Equal(t, keys.FromString(precomposed), keys.FromString(decomposed))
}

func TestFromStringRoundTripsASCII(t *testing.T) {
	assert.Equal(t, []byte("hello"), keys.FromString("hello"))
}
