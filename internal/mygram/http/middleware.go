package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/jwtx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

type identityKey struct{}
type claimsKey struct{}

// IdentityFromContext returns the authenticated identity placed by
// RequireSession.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

// ClaimsFromContext returns the session claims placed by RequireSession.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(jwtx.Claims)
	return claims, ok
}

// extractCredential pulls the session credential from the session cookie or,
// failing that, an Authorization bearer header. The second return reports
// whether the credential came from the cookie, which decides whether CSRF
// applies: bearer headers can't be attached by a cross-site form, cookies can.
func extractCredential(r *http.Request) (raw string, fromCookie bool) {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}

	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token), false
	}
	return "", false
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// RequireSession authorizes the request via AuthGuard and, for mutating
// cookie-authenticated requests, enforces the double-submit CSRF token. All
// auth failures produce the same generic 401.
func RequireSession(guard *service.AuthGuard) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			raw, fromCookie := extractCredential(r)

			identity, claims, err := guard.Authorize(raw)
			if err != nil {
				log.Info("request rejected", "err", err)
				errUnauthorized.WriteError(w)
				return
			}

			if fromCookie && mutating(r.Method) {
				token := r.Header.Get(csrfHeaderName)
				if !guard.Sessions.VerifyCSRF(claims.ID, token) {
					log.Info("csrf token mismatch", "credential_id", claims.ID)
					errInvalidCSRF.WriteError(w)
					return
				}
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			ctx = context.WithValue(ctx, claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
