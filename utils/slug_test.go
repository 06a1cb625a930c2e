package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSlug(t *testing.T) {
	slugPattern := regexp.MustCompile(`^[a-z0-9-]*$`)

	cases := map[string]string{
		"Interstellar":              "interstellar",
		"The Lord of the Rings":     "the-lord-of-the-rings",
		"Amélie":                    "amelie",
		"  Spaced   Out  ":          "spaced-out",
		"2001: A Space Odyssey":     "2001-a-space-odyssey",
		"Birdman (or The Virtue)":   "birdman-or-the-virtue",
	}

	for input, want := range cases {
		got := GetSlug(input)
		assert.Equal(t, want, got, "slug of %q", input)
		assert.Regexp(t, slugPattern, got)
	}
}

func TestGetSlugDeterministic(t *testing.T) {
	assert.Equal(t, GetSlug("The Matrix"), GetSlug("The Matrix"))
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("662a5f6f8e8d4b2f6cbeef00"))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("not-an-id"))
	assert.False(t, IsValidID("662a5f6f8e8d4b2f6cbeef0"))
}
