package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, salt, err := hashPassword("admin123")
	require.NoError(t, err)

	ok, err := verifyPassword("admin123", salt, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword("admin124", salt, hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordRejectsMalformedEncoding(t *testing.T) {
	hash, salt, err := hashPassword("admin123")
	require.NoError(t, err)

	_, err = verifyPassword("admin123", "not base64!", hash)
	assert.Error(t, err)

	_, err = verifyPassword("admin123", salt, "not base64!")
	assert.Error(t, err)
}
