package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignCSRF derives a deterministic anti-forgery token from a session's
// credential id using HMAC-SHA256. The same (secret, id) pair always yields
// the same token, so the server never has to store it.
func SignCSRF(secret []byte, credentialID string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(credentialID))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyCSRF reports whether token is the anti-forgery token bound to the
// given credential id. Comparison is constant-time.
func VerifyCSRF(secret []byte, credentialID, token string) bool {
	want := SignCSRF(secret, credentialID)
	return hmac.Equal([]byte(want), []byte(token))
}
