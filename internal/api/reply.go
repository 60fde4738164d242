package api

import (
	"forumapi/internal/domain"
)

// Request DTOs

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type CreateReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
