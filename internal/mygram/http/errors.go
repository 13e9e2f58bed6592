package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mygramapp/mygram/internal/mygram/store"
	"github.com/mygramapp/mygram/pkg/httpx"
)

// apiError is the JSON error envelope. Codes are stable machine-readable
// strings; Message is optional human context. Auth failures always use the
// same generic body so callers can't distinguish missing, malformed, expired
// and revoked credentials.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (e apiError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.Status, e)
}

var (
	errUnauthorized = apiError{Status: http.StatusUnauthorized, Code: "unauthorized"}
	errInvalidCSRF  = apiError{Status: http.StatusForbidden, Code: "invalid_csrf_token"}
	errBadRequest   = apiError{Status: http.StatusBadRequest, Code: "bad_request"}
	errNotFound     = apiError{Status: http.StatusNotFound, Code: "not_found"}
	errConflict     = apiError{Status: http.StatusConflict, Code: "already_exists"}
	errServer       = apiError{Status: http.StatusInternalServerError, Code: "server_error"}
)

// writeStoreError maps store sentinels onto HTTP errors. Anything unexpected
// is logged and collapsed into a 500 with no detail.
func writeStoreError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		errNotFound.WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		errConflict.WriteError(w)
	default:
		log.Error("store operation failed", "err", err)
		errServer.WriteError(w)
	}
}
