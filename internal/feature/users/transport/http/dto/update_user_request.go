package dto

// UpdateUserRequest is the body of PUT /api/v1/users/:id.
// All fields are optional; absent fields leave the stored value unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty"`
}
