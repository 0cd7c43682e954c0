package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainMatcher(t *testing.T) {
	m := PlainMatcher{}
	assert.True(t, m.Matches("secret", "secret"))
	assert.False(t, m.Matches("secret", "Secret"))
	assert.False(t, m.Matches("secret", "secret "))
	assert.False(t, m.Matches("", "secret"))
	assert.True(t, m.Matches("", ""))
}

func TestBcryptMatcher(t *testing.T) {
	hash, err := HashPassword("pass1234")
	require.NoError(t, err)

	m := BcryptMatcher{}
	assert.True(t, m.Matches(hash, "pass1234"))
	assert.False(t, m.Matches(hash, "pass12345"))
	assert.False(t, m.Matches("not-a-hash", "pass1234"))
}

func TestMatcherForScheme(t *testing.T) {
	assert.IsType(t, BcryptMatcher{}, MatcherForScheme("bcrypt"))
	assert.IsType(t, PlainMatcher{}, MatcherForScheme("plain"))
	assert.IsType(t, PlainMatcher{}, MatcherForScheme(""))
	assert.IsType(t, PlainMatcher{}, MatcherForScheme("unknown"))
}
