package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_CheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cret!", hash)

	assert.True(t, CheckPassword(hash, "S3cret!"))
	assert.False(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword("not-a-hash", "S3cret!"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestIsPasswordTooLong(t *testing.T) {
	assert.False(t, IsPasswordTooLong("short"))
	assert.True(t, IsPasswordTooLong(strings.Repeat("x", 73)))
}
