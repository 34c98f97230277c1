package dto

import "github.com/yigit/collegeerp/internal/app/models"

// SignupRequest represents identity registration data
type SignupRequest struct {
	Name   string      `json:"name" validate:"required"`
	UserID string      `json:"userId" validate:"required"`
	Role   models.Role `json:"role" validate:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Name   string `json:"name" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Message         string      `json:"message"`
	Role            models.Role `json:"role"`
	UserID          string      `json:"userId"`
	ProfileComplete bool        `json:"profileComplete"`
}
