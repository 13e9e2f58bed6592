package cryptox_test

import (
	"testing"

	"github.com/mygramapp/mygram/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Run("valid sizes", func(t *testing.T) {
		a, err := cryptox.GenerateToken(cryptox.TokenSize128)
		require.NoError(t, err)
		require.NotEmpty(t, a)

		b, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)

		_, err = cryptox.GenerateToken(-5)
		require.Error(t, err)
	})
}

func TestFingerprintToken(t *testing.T) {
	fp1 := cryptox.FingerprintToken("some-token")
	fp2 := cryptox.FingerprintToken("some-token")
	fp3 := cryptox.FingerprintToken("other-token")

	require.Equal(t, fp1, fp2, "fingerprint must be deterministic")
	require.NotEqual(t, fp1, fp3)
	require.Len(t, fp1, 43) // base64url of 32 bytes, no padding
}
