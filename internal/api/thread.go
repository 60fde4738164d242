package api

import (
	"forumapi/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Response DTOs

type CreateThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadDetailResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}
