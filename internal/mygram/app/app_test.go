package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SESSION_ISSUER", "SESSION_TTL", "ALLOWED_ORIGINS", "COOKIE_SECURE",
		"REVOCATION_SWEEP_INTERVAL", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	require.Equal(t, "mygram", cfg.Issuer)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, 10*time.Minute, cfg.RevocationSweepInterval)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("PORT", "9999")

	cfg := LoadConfig()

	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, 9999, cfg.Port)
}

func newTestApp(t *testing.T) *Application {
	t.Helper()

	cfg := LoadConfig()
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "test.db")
	cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
	cfg.CSRFSecret = "csrf-secret-for-tests"
	cfg.AllowedOrigins = []string{"https://app.example.com"}
	cfg.LogLevel = "error"

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	return application
}

func TestCORSPreflightAllowlist(t *testing.T) {
	application := newTestApp(t)
	handler := application.server.Handler

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-CSRF-Token")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin never reflected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestAppServesRoutes(t *testing.T) {
	application := newTestApp(t)
	handler := application.server.Handler

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
