package api

import (
	"forumapi/internal/domain"
)

// Request DTOs

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type CreateCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}
