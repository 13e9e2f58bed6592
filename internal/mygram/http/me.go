package http

import (
	"net/http"

	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

// MeHandler serves GET /me: the registered display name of the current
// session's user. The session identity comes from the identity provider;
// the name comes from the users row, so an authenticated identity with no
// row yet gets a 404.
type MeHandler struct {
	Users *service.UserService
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		errUnauthorized.WriteError(w)
		return
	}

	user, err := h.Users.GetByEmail(r.Context(), identity.Email)
	if err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"name": user.Name})
}
