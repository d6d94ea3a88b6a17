package dto

import "user_backend/internal/feature/users/domain/entity"

// UserResponse wraps a single user record.
type UserResponse struct {
	Success bool         `json:"success"`
	Data    *entity.User `json:"data"`
}

// UserListResponse wraps one page of user records.
type UserListResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []entity.User `json:"data"`
}

// DeleteResponse confirms a delete with an empty data object.
type DeleteResponse struct {
	Success bool     `json:"success"`
	Data    struct{} `json:"data"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
