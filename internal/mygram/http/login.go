package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/pkg/cryptox"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

// GoogleLoginHandler serves POST /google_login.
//
// The frontend runs the browser popup flow and posts the resulting
// authorization code here. The code is redeemed upstream, a session
// credential is minted for the verified identity, and the pair of cookies is
// set. The CSRF token is also returned in the body and header for clients
// that keep it in memory instead of reading the cookie.
type GoogleLoginHandler struct {
	Exchanger    *service.GoogleExchanger
	Sessions     *service.SessionService
	CookieSecure bool
}

type googleLoginRequest struct {
	Code string `json:"code"`
}

func (h *GoogleLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req googleLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errBadRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		errBadRequest.WriteError(w)
		return
	}

	identity, err := h.Exchanger.Exchange(ctx, req.Code)
	if err != nil {
		// The cause stays in the logs; the response never reveals which
		// upstream step failed.
		if errors.Is(err, service.ErrUpstreamAuth) {
			log.Warn("identity exchange failed", "err", err, "code_fp", cryptox.FingerprintToken(req.Code))
			errUnauthorized.WriteError(w)
			return
		}
		log.Error("identity exchange failed", "err", err)
		errServer.WriteError(w)
		return
	}

	session, err := h.Sessions.Issue(identity)
	if err != nil {
		log.Error("session issue failed", "err", err)
		errServer.WriteError(w)
		return
	}

	log.Info("login", "email", identity.Email, "credential_id", session.CredentialID)

	setSessionCookies(w, session, h.CookieSecure)
	w.Header().Set(csrfHeaderName, session.CSRFToken)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"user":       identity,
		"csrf_token": session.CSRFToken,
	})
}
