package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"forumapi/internal/api"
	"forumapi/internal/domain"
	"forumapi/internal/middleware"
	"forumapi/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	added, err := h.replies.Create(threadId, domain.ReplyCreationData{
		Content:   body.Content,
		CommentId: commentId,
		Owner:     user.Id,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.CreateReplyResponse{AddedReply: added}))
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	if err := h.replies.Delete(threadId, commentId, replyId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
