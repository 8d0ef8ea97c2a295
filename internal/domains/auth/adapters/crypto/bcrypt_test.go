package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptRoundTrip(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("password")
	require.NoError(t, err)
	require.NotEqual(t, "password", hash)
	require.True(t, h.Compare(hash, "password"))
	require.False(t, h.Compare(hash, "Password"))
}
