// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/auth/transport/http/dto"
	"user_backend/internal/feature/auth/usecase"
	"user_backend/internal/feature/users/domain"
	"user_backend/internal/feature/users/domain/entity"
	jwtmw "user_backend/internal/platform/jwt"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns a session token.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login authenticates a user and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// Me returns the record of the authenticated caller.
	Me(ctx context.Context, userID string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for registration, login and self-lookup.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register.
// Responds 201 with a token on success, 400 on validation failure or
// duplicate email.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordPolicy):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			slog.Warn("registration with existing email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User already exists"})
		default:
			slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		}
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.TokenResponse{Success: true, Token: token})
}

// Login handles POST /api/v1/auth/login.
// Responds 200 with a token on success. Unknown email and wrong password both
// produce the same 401 so user existence is never leaked.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

// Me handles GET /api/v1/auth/me. The auth middleware has already resolved
// the caller's identity into the context.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		slog.Error("self lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{Success: true, Data: user})
}
