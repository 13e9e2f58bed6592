package http

import (
	"net/http"
	"strings"

	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

// UsersHandler serves the /users routes.
type UsersHandler struct {
	Users *service.UserService
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (req createUserRequest) validate() bool {
	return strings.TrimSpace(req.Name) != "" &&
		strings.Contains(req.Email, "@")
}

func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil || !req.validate() {
		errBadRequest.WriteError(w)
		return
	}

	user, err := h.Users.Create(r.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Email))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	log.Info("user created", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "User created",
		"user":    user,
	})
}

func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	user, err := h.Users.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}
