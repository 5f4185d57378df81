package model

import "github.com/google/uuid"

// TokenManager issues and verifies signed identity tokens. Verification is
// pure: it never touches storage and carries no server-side state.
type TokenManager interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ParseToken(token string) (uuid.UUID, error)
}
