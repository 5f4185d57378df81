package handler

import (
	"time"

	"github.com/dtroode/accounts-server/internal/model"
)

type registerRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6,max=64"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token              string `json:"token" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=6,max=64"`
	NewPasswordConfirm string `json:"newPasswordConfirm" binding:"required,eqfield=NewPassword"`
}

type updateNameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type updatePasswordRequest struct {
	OldPassword        string `json:"oldPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=6,max=64"`
	NewPasswordConfirm string `json:"newPasswordConfirm" binding:"required,eqfield=NewPassword"`
}

// filteredUser is the client-visible projection of an account. The
// password hash and token columns never cross the wire.
type filteredUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func filterUser(user model.User) filteredUser {
	return filteredUser{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func filterUsers(users []model.User) []filteredUser {
	filtered := make([]filteredUser, 0, len(users))
	for _, user := range users {
		filtered = append(filtered, filterUser(user))
	}
	return filtered
}
