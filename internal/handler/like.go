package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"forumapi/internal/api"
	"forumapi/internal/middleware"
	"forumapi/internal/utils"
)

// ToggleLike is idempotent in shape: liking twice ends back at "not liked",
// and the response is the same either way.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	if err := h.likes.Toggle(threadId, commentId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
