package http

import (
	"net/http"

	"github.com/mygramapp/mygram/pkg/httpx"
)

// ProtectedHandler serves GET /protected, a session check that echoes who
// the credential belongs to.
func ProtectedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			errUnauthorized.WriteError(w)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "access granted",
			"user":    identity.Email,
		})
	}
}
