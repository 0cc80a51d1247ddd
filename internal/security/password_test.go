package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	digest, err := HashPassword("password1")
	require.NoError(t, err)
	require.NotEqual(t, "password1", digest)

	require.True(t, VerifyPassword("password1", digest))
	require.False(t, VerifyPassword("password2", digest))
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	first, err := HashPassword("password1")
	require.NoError(t, err)

	second, err := HashPassword("password1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, VerifyPassword("password1", first))
	require.True(t, VerifyPassword("password1", second))
}
