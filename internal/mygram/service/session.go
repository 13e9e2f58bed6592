package service

import (
	"time"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/pkg/cryptox"
	"github.com/mygramapp/mygram/pkg/jwtx"
)

// SessionService mints and verifies session credentials. Verification is
// pure (signature + time window); revocation lives in AuthGuard so this
// stays side-effect free.
type SessionService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	CSRFSecret []byte
	Issuer     string
	TTL        time.Duration
}

// Issue mints a signed session credential for a verified identity along with
// the anti-forgery token bound to its credential id.
func (s *SessionService) Issue(identity domain.Identity) (domain.Session, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(identity.Email, identity.Name, s.Issuer, ttl, time.Now())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		Token:        token,
		CSRFToken:    cryptox.SignCSRF(s.CSRFSecret, claims.ID),
		CredentialID: claims.ID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Verify checks signature and expiry and returns the embedded claims.
func (s *SessionService) Verify(raw string) (jwtx.Claims, error) {
	return s.Verifier.Verify(raw)
}

// VerifyCSRF reports whether token is the anti-forgery token bound to the
// given credential id.
func (s *SessionService) VerifyCSRF(credentialID, token string) bool {
	return cryptox.VerifyCSRF(s.CSRFSecret, credentialID, token)
}
