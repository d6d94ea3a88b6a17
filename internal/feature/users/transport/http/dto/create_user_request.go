// Package dto defines the request and response shapes for the user endpoints.
package dto

// CreateUserRequest is the body of POST /api/v1/users.
// The password policy beyond presence is enforced in the usecase.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
