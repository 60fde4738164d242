// Package handler implements HTTP handlers for the forum API.
//
// Handlers decode, delegate to services and render the response envelope.
// All business rules (validation, ownership, masking) live in the service
// layer.
package handler

import (
	"forumapi/internal/service"
)

type Handler struct {
	auth     service.AuthService
	threads  service.ThreadService
	comments service.CommentService
	replies  service.ReplyService
	likes    service.LikeService
}

func New(
	auth service.AuthService,
	threads service.ThreadService,
	comments service.CommentService,
	replies service.ReplyService,
	likes service.LikeService,
) *Handler {
	return &Handler{
		auth:     auth,
		threads:  threads,
		comments: comments,
		replies:  replies,
		likes:    likes,
	}
}
