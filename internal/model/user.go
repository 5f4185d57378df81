package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByVerificationToken(ctx context.Context, token string) (User, error)
	List(ctx context.Context, page, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetVerified(ctx context.Context, id uuid.UUID) error
	SetVerificationToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
}

// User represents a stored user account with authentication material.
// Password holds the encoded argon2id hash, never the plaintext.
type User struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Password          string
	Role              Role
	Verified          bool
	VerificationToken *string
	TokenExpiresAt    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
