// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain"
	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// UserUsecase defines the user operations the handler depends on.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type UserUsecase interface {
	// List returns one page of users.
	List(ctx context.Context, page, limit int) ([]entity.User, error)
	// Get returns a single user by id.
	Get(ctx context.Context, id string) (*entity.User, error)
	// Create persists a new user and publishes a create event.
	Create(ctx context.Context, name, email, password string) (*entity.User, error)
	// Update applies a partial update and publishes an update event.
	Update(ctx context.Context, id string, params usecase.UpdateParams) (*entity.User, error)
	// Delete removes a user. Idempotent.
	Delete(ctx context.Context, id string) error
}

// UserHandler handles HTTP requests for user CRUD operations.
// All routes are auth-gated by the JWT middleware before reaching here.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/v1/users?page&limit.
func (h *UserHandler) List(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	limit := queryInt(c, "limit", defaultLimit)

	users, err := h.users.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if users == nil {
		users = []entity.User{}
	}

	c.JSON(http.StatusOK, dto.UserListResponse{Success: true, Count: len(users), Data: users})
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Success: true, Data: user})
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("user created", "user_id", user.ID)
	c.JSON(http.StatusCreated, dto.UserResponse{Success: true, Data: user})
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), usecase.UpdateParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("user updated", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.UserResponse{Success: true, Data: user})
}

// Delete handles DELETE /api/v1/users/:id. Deleting an absent id still
// responds 200, keeping the operation idempotent for clients.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	slog.Info("user deleted", "user_id", id)
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}

// respondError translates usecase and domain errors into HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User already exists"})
	case errors.Is(err, domain.ErrPasswordPolicy):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("user operation failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
	}
}

// queryInt parses a positive integer query parameter, falling back to a default.
func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
