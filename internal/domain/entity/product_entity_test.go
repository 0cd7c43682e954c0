package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"apple", "apple"},
		{"Apple", "apple"},
		{"APPLE", "apple"},
		{" Apple ", "apple"},
		{"\tCoffee Beans\n", "coffee beans"},
		{"  ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	for _, in := range []string{" Apple ", "apple", "APPLE"} {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once))
	}
}

func TestUserDisplayName(t *testing.T) {
	u := &User{Name: "Alice"}
	assert.Equal(t, "Alice", u.DisplayName())

	u = &User{}
	assert.Equal(t, "User", u.DisplayName())
}
