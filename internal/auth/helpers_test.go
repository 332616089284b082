package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash)
	assert.True(t, CheckPasswordHash("pw123", hash))
	assert.False(t, CheckPasswordHash("wrongpw", hash))
}

func TestGenerateResetToken(t *testing.T) {
	plain, hash, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, plain, 40)
	assert.Equal(t, hash, HashResetToken(plain))
	assert.NotEqual(t, plain, hash)

	// A fabricated token must not hash to the stored value.
	assert.NotEqual(t, hash, HashResetToken("fabricated"))
}
