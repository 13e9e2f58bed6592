package http

import (
	"net/http"

	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

// LogoutHandler serves POST /logout. It revokes the presented credential's
// id until the credential would have expired anyway, then clears both
// cookies.
type LogoutHandler struct {
	Registry     *service.RevocationRegistry
	CookieSecure bool
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		errUnauthorized.WriteError(w)
		return
	}

	h.Registry.Revoke(claims.ID, claims.ExpiresAt.Time)
	log.Info("logout", "credential_id", claims.ID)

	clearSessionCookies(w, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}
