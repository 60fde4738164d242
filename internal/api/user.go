package api

import (
	"forumapi/internal/domain"
)

// Request DTOs

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type RegisterUserResponse struct {
	AddedUser domain.AddedUser `json:"addedUser"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
