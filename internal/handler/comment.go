package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"forumapi/internal/api"
	"forumapi/internal/domain"
	"forumapi/internal/middleware"
	"forumapi/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	added, err := h.comments.Create(domain.CommentCreationData{
		Content:  body.Content,
		ThreadId: threadId,
		Owner:    user.Id,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.CreateCommentResponse{AddedComment: added}))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	if err := h.comments.Delete(threadId, commentId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
