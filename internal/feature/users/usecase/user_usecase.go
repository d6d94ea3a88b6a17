// Package usecase implements the business logic for the users feature.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/users/domain"
	"user_backend/internal/feature/users/domain/entity"
)

// Operation tags carried in queue messages for user mutations.
const (
	EventCreate = "create"
	EventUpdate = "update"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailAlreadyExists if a
	// user with the same email is already present.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id. Returns domain.ErrUserNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email. Returns domain.ErrUserNotFound if absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns one page of users in insertion order.
	// Offset is derived as (page-1)*limit.
	List(ctx context.Context, page, limit int) ([]entity.User, error)

	// Update applies the given fields to the user with the given id and
	// returns the updated record. Returns domain.ErrUserNotFound if absent.
	Update(ctx context.Context, id string, fields map[string]any) (*entity.User, error)

	// Delete removes the user with the given id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}

// EventPublisher publishes user mutation events to the notification queue.
// Publishing is best-effort; a failure never rolls back the store mutation.
type EventPublisher interface {
	Publish(ctx context.Context, operation string, user *entity.User) error
}

// UpdateParams carries the optional fields of a partial user update.
// A nil field leaves the stored value unchanged.
type UpdateParams struct {
	Name     *string
	Email    *string
	Password *string
}

// userUsecase implements the user CRUD business logic.
type userUsecase struct {
	users  UserRepository
	events EventPublisher
}

// NewUserUsecase creates a new userUsecase instance.
// events may be nil, in which case mutation events are not published.
func NewUserUsecase(users UserRepository, events EventPublisher) *userUsecase {
	return &userUsecase{users: users, events: events}
}

// List returns one page of users.
func (u *userUsecase) List(ctx context.Context, page, limit int) ([]entity.User, error) {
	return u.users.List(ctx, page, limit)
}

// Get returns a single user by id.
func (u *userUsecase) Get(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Create persists a new user with a normalized email and hashed password,
// then publishes a create event.
func (u *userUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	email = domain.NormalizeEmail(email)
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	u.publish(ctx, EventCreate, user)
	return user, nil
}

// Update applies a partial update and publishes an update event.
func (u *userUsecase) Update(ctx context.Context, id string, params UpdateParams) (*entity.User, error) {
	fields := map[string]any{}
	if params.Name != nil {
		fields["name"] = *params.Name
	}
	if params.Email != nil {
		fields["email"] = domain.NormalizeEmail(*params.Email)
	}
	if params.Password != nil {
		if err := domain.ValidatePassword(*params.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password"] = string(hashed)
	}

	user, err := u.users.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	u.publish(ctx, EventUpdate, user)
	return user, nil
}

// Delete removes a user. Delete is idempotent and publishes no event.
func (u *userUsecase) Delete(ctx context.Context, id string) error {
	return u.users.Delete(ctx, id)
}

// publish emits a mutation event. The store mutation has already committed,
// so failures are logged and otherwise ignored.
func (u *userUsecase) publish(ctx context.Context, operation string, user *entity.User) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, operation, user); err != nil {
		slog.Warn("failed to publish user event", "operation", operation, "user_id", user.ID, "error", err)
	}
}
