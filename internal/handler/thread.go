package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"forumapi/internal/api"
	"forumapi/internal/domain"
	"forumapi/internal/middleware"
	"forumapi/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	added, err := h.threads.Create(domain.ThreadCreationData{
		Title: body.Title,
		Body:  body.Body,
		Owner: user.Id,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.CreateThreadResponse{AddedThread: added}))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	detail, err := h.threads.GetDetail(threadId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.ThreadDetailResponse{Thread: detail}))
}
