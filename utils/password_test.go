package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotContains(t, encoded, "secret1")
	assert.Len(t, strings.Split(encoded, "."), 2)

	assert.NoError(t, VerifyPassword("secret1", encoded))
	assert.Error(t, VerifyPassword("wrong", encoded))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	assert.Error(t, VerifyPassword("secret1", "no-dot-here"))
	assert.Error(t, VerifyPassword("secret1", "!!!.###"))
}
