// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user account.
// It is the canonical record persisted in the store; cached copies are
// JSON snapshots of this struct.
type User struct {
	// ID is the store-assigned opaque identifier for the user.
	ID string `gorm:"primaryKey;size:36" json:"_id"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It is never serialized in API responses.
	Password string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
