package domain

import "time"

// Session is a freshly minted session credential plus the anti-forgery token
// bound to it. The server keeps no copy: validity is signature + expiry +
// non-membership in the revocation registry.
type Session struct {
	// Token is the signed compact credential handed to the browser as an
	// HTTP-only cookie.
	Token string

	// CSRFToken is derived from the credential id and must be echoed in a
	// header on mutating requests (double-submit).
	CSRFToken string

	// CredentialID is the jti embedded in Token, used as the revocation key.
	CredentialID string

	ExpiresAt time.Time
}
