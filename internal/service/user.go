package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/password"
)

// User implements profile reads and updates plus avatar storage.
type User struct {
	userStore model.UserStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	storage model.Storage,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		storage:   storage,
		logger:    logger,
	}
}

// GetByID resolves a token subject to a live account. A subject whose
// account was deleted after the token was issued gets
// ErrUserNoLongerExists, distinct from an invalid token.
func (u *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := u.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNoLongerExists()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// List returns one page of users plus the total account count.
func (u *User) List(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, err := u.userStore.List(ctx, page, limit)
	if err != nil {
		u.logger.Error("User service: failed to list users",
			"page", page,
			"limit", limit,
			"error", err.Error())
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	total, err := u.userStore.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

func (u *User) UpdateName(ctx context.Context, id uuid.UUID, name string) (model.User, error) {
	user, err := u.userStore.UpdateName(ctx, id, name)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNoLongerExists()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update name: %w", err)
	}

	u.logger.Info("User service: name updated",
		"user_id", id)

	return user, nil
}

// UpdateRole validates the value against the closed role enum before
// touching storage. Unknown roles are a client error, never a default.
func (u *User) UpdateRole(ctx context.Context, id uuid.UUID, roleValue string) (model.User, error) {
	role, err := model.ParseRole(roleValue)
	if err != nil {
		return model.User{}, apierrors.NewErrValidation(err.Error())
	}

	user, err := u.userStore.UpdateRole(ctx, id, role)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNoLongerExists()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update role: %w", err)
	}

	u.logger.Info("User service: role updated",
		"user_id", id,
		"role", role)

	return user, nil
}

// UpdatePassword verifies the caller's current password before writing
// the new hash.
func (u *User) UpdatePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error {
	user, err := u.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUserNoLongerExists()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	match, err := password.Verify(oldPassword, user.Password)
	if err != nil {
		u.logger.Error("User service: failed to verify old password",
			"user_id", id,
			"error", err.Error())
		return err
	}
	if !match {
		u.logger.Info("User service: old password mismatch",
			"user_id", id)
		return apierrors.NewErrWrongOldPassword()
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := u.userStore.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	u.logger.Info("User service: password updated",
		"user_id", id)

	return nil
}

// UploadAvatar replaces the user's avatar in object storage.
func (u *User) UploadAvatar(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) error {
	if err := u.storage.Upload(ctx, avatarKey(id), reader, size, contentType); err != nil {
		u.logger.Error("User service: failed to upload avatar",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to upload avatar: %w", err)
	}

	u.logger.Info("User service: avatar uploaded",
		"user_id", id)

	return nil
}

// DownloadAvatar streams the user's avatar with the content type it was
// uploaded with. Absent avatars are a typed not-found, not a storage
// failure.
func (u *User) DownloadAvatar(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	exists, err := u.storage.Exists(ctx, avatarKey(id))
	if err != nil {
		return nil, "", fmt.Errorf("failed to check avatar: %w", err)
	}
	if !exists {
		return nil, "", apierrors.NewErrAvatarNotFound()
	}

	reader, contentType, err := u.storage.Download(ctx, avatarKey(id))
	if err != nil {
		return nil, "", fmt.Errorf("failed to download avatar: %w", err)
	}

	return reader, contentType, nil
}

func (u *User) DeleteAvatar(ctx context.Context, id uuid.UUID) error {
	if err := u.storage.Delete(ctx, avatarKey(id)); err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}

	u.logger.Info("User service: avatar deleted",
		"user_id", id)

	return nil
}

func avatarKey(id uuid.UUID) string {
	return "avatars/" + id.String()
}
