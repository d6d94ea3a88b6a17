// Package dto defines the request and response shapes for the auth endpoints.
package dto

// RegisterRequest is the body of POST /api/v1/auth/register.
// The password policy beyond length is enforced in the usecase.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
