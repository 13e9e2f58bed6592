package service

import "errors"

var (
	// ErrUpstreamAuth covers every failure of the identity-provider round
	// trip: transport errors, non-2xx responses, and malformed bodies all
	// collapse into it so callers can't probe which step failed.
	ErrUpstreamAuth = errors.New("upstream_auth_failed")

	// ErrMissingCredential means no session credential was presented.
	ErrMissingCredential = errors.New("missing_credential")

	// ErrRevoked means the credential id is in the revocation registry.
	ErrRevoked = errors.New("credential_revoked")
)
