package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Authenticatable is anything a session layer can log in and load back by ID.
type Authenticatable interface {
	GetID() uuid.UUID
}

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a marketplace account. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var _ Authenticatable = User{}

// GetID returns the user ID.
func (u User) GetID() uuid.UUID {
	return u.ID
}

// UserUpdate is a partial update. Nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}
