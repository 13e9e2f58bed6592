package http

import (
	"net/http"
	"strings"

	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

// CommentsHandler serves the comment routes.
type CommentsHandler struct {
	Comments *service.CommentService
	Posts    *service.PostService
	Users    *service.UserService
}

type createCommentRequest struct {
	Content string `json:"content"`
}

func (h *CommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	comments, err := h.Comments.ListForPost(r.Context(), postID)
	if err != nil {
		writeStoreError(w, slogx.FromContext(r.Context()), err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (h *CommentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	postID, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		errUnauthorized.WriteError(w)
		return
	}

	var req createCommentRequest
	if err := decodeJSON(w, r, &req); err != nil || strings.TrimSpace(req.Content) == "" {
		errBadRequest.WriteError(w)
		return
	}

	user, err := h.Users.GetByEmail(r.Context(), identity.Email)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	// Commenting on a missing post should 404, not hit the FK
	if _, err := h.Posts.Detail(r.Context(), postID); err != nil {
		writeStoreError(w, log, err)
		return
	}

	id, err := h.Comments.Add(r.Context(), postID, user.ID, req.Content)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	log.Info("comment created", "comment_id", id, "post_id", postID)
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Comment created",
		"id":      id,
	})
}

func (h *CommentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		errBadRequest.WriteError(w)
		return
	}

	if err := h.Comments.Delete(r.Context(), id); err != nil {
		writeStoreError(w, log, err)
		return
	}

	log.Info("comment deleted", "comment_id", id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}
