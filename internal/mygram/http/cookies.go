package http

import (
	"net/http"
	"time"

	"github.com/mygramapp/mygram/internal/mygram/domain"
)

const (
	// sessionCookieName carries the signed session credential. HTTP-only so
	// scripts can never read it.
	sessionCookieName = "access_token_cookie"

	// csrfCookieName carries the anti-forgery token. Deliberately readable
	// so the frontend can echo it in the csrfHeaderName header
	// (double-submit).
	csrfCookieName = "csrf_access_token"

	csrfHeaderName = "X-CSRF-Token"
)

// cookieSameSite picks the SameSite mode: cross-site frontends need None,
// and None requires Secure, so plain-HTTP deployments fall back to Lax.
func cookieSameSite(secure bool) http.SameSite {
	if secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func setSessionCookies(w http.ResponseWriter, session domain.Session, secure bool) {
	sameSite := cookieSameSite(secure)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    session.CSRFToken,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: false,
		Secure:   secure,
		SameSite: sameSite,
	})
}

func clearSessionCookies(w http.ResponseWriter, secure bool) {
	sameSite := cookieSameSite(secure)

	for _, name := range []string{sessionCookieName, csrfCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: name == sessionCookieName,
			Secure:   secure,
			SameSite: sameSite,
		})
	}
}
