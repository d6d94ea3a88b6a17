// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/users/domain"
	"user_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence operations the auth feature needs.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailAlreadyExists if a
	// user with the same email is already present.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email. Returns domain.ErrUserNotFound if absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id. Returns domain.ErrUserNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenIssuer defines the interface for signed token issuance.
type TokenIssuer interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID, email string) (string, error)
}

// authUsecase implements the registration and login business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Register creates a new user with a normalized email and hashed password,
// then issues a session token.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	email = domain.NormalizeEmail(email)
	if err := domain.ValidatePassword(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Login authenticates a user and issues a session token on success.
// To mitigate timing attacks, a bcrypt comparison runs even when the user
// does not exist, and the same generic error covers both failure modes.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, domain.NormalizeEmail(email))

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}

// Me returns the record of the authenticated caller.
func (u *authUsecase) Me(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
