package http

import (
	"net/http"
	"strings"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

// PostsHandler serves the /posts routes.
type PostsHandler struct {
	Posts *service.PostService
	Users *service.UserService
}

type createPostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (req createPostRequest) validate() bool {
	return strings.TrimSpace(req.Title) != "" &&
		strings.TrimSpace(req.Description) != ""
}

// currentUser resolves the session identity to its users row.
func (h *PostsHandler) currentUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		errUnauthorized.WriteError(w)
		return domain.User{}, false
	}

	user, err := h.Users.GetByEmail(r.Context(), identity.Email)
	if err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return domain.User{}, false
	}
	return user, true
}

// HandleList returns the current user's posts in feed projection.
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		errUnauthorized.WriteError(w)
		return
	}

	posts, err := h.Posts.ListForUser(r.Context(), identity.Email)
	if err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		errUnauthorized.WriteError(w)
		return
	}

	var req createPostRequest
	if err := decodeJSON(w, r, &req); err != nil || !req.validate() {
		errBadRequest.WriteError(w)
		return
	}

	id, err := h.Posts.Create(r.Context(), identity.Email, strings.TrimSpace(req.Title), req.Description)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	log.Info("post created", "post_id", id)
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Post created",
		"id":      id,
	})
}

func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	detail, err := h.Posts.Detail(r.Context(), id)
	if err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"post": detail})
}

func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	if err := h.Posts.Delete(r.Context(), id); err != nil {
		writeStoreError(w, log, err)
		return
	}

	log.Info("post deleted", "post_id", id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

func (h *PostsHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.Posts.Like(r.Context(), id, user.ID); err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Post liked"})
}

func (h *PostsHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.Posts.Unlike(r.Context(), id, user.ID); err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post unliked"})
}
