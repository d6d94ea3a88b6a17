package dto

import "user_backend/internal/feature/users/domain/entity"

// TokenResponse is returned by register and login on success.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// MeResponse is returned by GET /api/v1/auth/me.
type MeResponse struct {
	Success bool         `json:"success"`
	Data    *entity.User `json:"data"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
