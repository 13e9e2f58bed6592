package cryptox_test

import (
	"testing"

	"github.com/mygramapp/mygram/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSignCSRF(t *testing.T) {
	secret := []byte("csrf-secret")

	t.Run("deterministic per credential id", func(t *testing.T) {
		a := cryptox.SignCSRF(secret, "jti-1")
		b := cryptox.SignCSRF(secret, "jti-1")
		require.Equal(t, a, b)
	})

	t.Run("differs across credential ids", func(t *testing.T) {
		a := cryptox.SignCSRF(secret, "jti-1")
		b := cryptox.SignCSRF(secret, "jti-2")
		require.NotEqual(t, a, b)
	})

	t.Run("differs across secrets", func(t *testing.T) {
		a := cryptox.SignCSRF(secret, "jti-1")
		b := cryptox.SignCSRF([]byte("other-secret"), "jti-1")
		require.NotEqual(t, a, b)
	})
}

func TestVerifyCSRF(t *testing.T) {
	secret := []byte("csrf-secret")
	token := cryptox.SignCSRF(secret, "jti-1")

	require.True(t, cryptox.VerifyCSRF(secret, "jti-1", token))
	require.False(t, cryptox.VerifyCSRF(secret, "jti-2", token))
	require.False(t, cryptox.VerifyCSRF(secret, "jti-1", "forged"))
	require.False(t, cryptox.VerifyCSRF(secret, "jti-1", ""))
}
