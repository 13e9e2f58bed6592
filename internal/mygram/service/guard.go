package service

import (
	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/pkg/jwtx"
)

// AuthGuard decides whether an inbound credential authorizes a request.
// A credential is valid iff its signature verifies, it hasn't expired, and
// its id is not in the revocation registry - in that order.
type AuthGuard struct {
	Sessions *SessionService
	Registry *RevocationRegistry
}

// Authorize validates a raw credential and returns the embedded identity and
// claims. Failures come back as ErrMissingCredential, the jwtx sentinels, or
// ErrRevoked; handlers collapse all of them into a generic 401.
func (g *AuthGuard) Authorize(raw string) (domain.Identity, jwtx.Claims, error) {
	if raw == "" {
		return domain.Identity{}, jwtx.Claims{}, ErrMissingCredential
	}

	claims, err := g.Sessions.Verify(raw)
	if err != nil {
		return domain.Identity{}, jwtx.Claims{}, err
	}

	if g.Registry.IsRevoked(claims.ID) {
		return domain.Identity{}, jwtx.Claims{}, ErrRevoked
	}

	return domain.Identity{Email: claims.Subject, Name: claims.Name}, claims, nil
}
