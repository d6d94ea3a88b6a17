package queue

import (
	"context"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// UserEvents publishes user mutation events to the user_operations queue.
type UserEvents struct {
	q *Queue
}

// Compile-time check that UserEvents implements EventPublisher.
var _ usecase.EventPublisher = (*UserEvents)(nil)

// NewUserEvents creates a UserEvents publisher backed by the given queue.
func NewUserEvents(q *Queue) *UserEvents {
	return &UserEvents{q: q}
}

// Publish sends a {operation, data} envelope for the given user.
func (p *UserEvents) Publish(ctx context.Context, operation string, user *entity.User) error {
	return p.q.Publish(ctx, UserOperationsQueue, Message{
		Operation: operation,
		Data:      user,
	})
}
