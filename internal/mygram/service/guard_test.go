package service

import (
	"testing"
	"time"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*AuthGuard, *SessionService) {
	t.Helper()

	sessions := newTestSessionService(t, time.Hour)
	guard := &AuthGuard{
		Sessions: sessions,
		Registry: NewRevocationRegistry(discardLogger(), time.Minute),
	}
	return guard, sessions
}

func TestAuthGuard_Authorize(t *testing.T) {
	guard, sessions := newTestGuard(t)

	session, err := sessions.Issue(domain.Identity{Email: "jess@example.com", Name: "Jess"})
	require.NoError(t, err)

	t.Run("valid credential", func(t *testing.T) {
		identity, claims, err := guard.Authorize(session.Token)
		require.NoError(t, err)
		require.Equal(t, "jess@example.com", identity.Email)
		require.Equal(t, "Jess", identity.Name)
		require.Equal(t, session.CredentialID, claims.ID)
	})

	t.Run("missing credential", func(t *testing.T) {
		_, _, err := guard.Authorize("")
		require.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("malformed credential", func(t *testing.T) {
		_, _, err := guard.Authorize("not-a-credential")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("revoked credential", func(t *testing.T) {
		guard.Registry.Revoke(session.CredentialID, session.ExpiresAt)

		_, _, err := guard.Authorize(session.Token)
		require.ErrorIs(t, err, ErrRevoked)
	})
}

func TestAuthGuard_ExpiredCredential(t *testing.T) {
	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "mygram-test")
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("jess@example.com", "Jess", "mygram-test", time.Minute, time.Now().Add(-time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	guard := &AuthGuard{
		Sessions: &SessionService{
			Signer:     signer,
			Verifier:   signer,
			CSRFSecret: []byte("csrf-secret-for-tests"),
			Issuer:     "mygram-test",
		},
		Registry: NewRevocationRegistry(discardLogger(), time.Minute),
	}

	_, _, err = guard.Authorize(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}
