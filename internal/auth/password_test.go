package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	assert.True(t, CheckPassword("Secret123!", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("Secret123!")
	require.NoError(t, err)
	h2, err := HashPassword("Secret123!")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")
	assert.True(t, CheckPassword("Secret123!", h1))
	assert.True(t, CheckPassword("Secret123!", h2))
}

func TestCheckPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.False(t, CheckPassword("battery staple", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("correct horse ", hash))
}
