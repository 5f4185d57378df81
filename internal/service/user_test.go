package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/logger"
	servermocks "github.com/dtroode/accounts-server/internal/mocks"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/password"
)

func TestUser_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		userStore := &servermocks.UserStore{}
		userID := uuid.New()
		userStore.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Email: "a@b.c"}, nil)

		u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

		user, err := u.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "a@b.c", user.Email)
	})

	t.Run("deleted account", func(t *testing.T) {
		userStore := &servermocks.UserStore{}
		userID := uuid.New()
		userStore.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

		u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

		_, err := u.GetByID(ctx, userID)
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
		assert.Equal(t, "User no longer exists", apiErr.Message)
	})
}

func TestUser_List(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}

	users := []model.User{{ID: uuid.New()}, {ID: uuid.New()}}
	userStore.On("List", mock.Anything, 2, 25).Return(users, nil)
	userStore.On("Count", mock.Anything).Return(int64(51), nil)

	u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

	got, total, err := u.List(ctx, 2, 25)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(51), total)
}

func TestUser_List_DefaultsPagination(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}

	userStore.On("List", mock.Anything, 1, 10).Return([]model.User{}, nil)
	userStore.On("Count", mock.Anything).Return(int64(0), nil)

	u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

	_, _, err := u.List(ctx, 0, -5)
	require.NoError(t, err)
}

func TestUser_UpdateName(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	userID := uuid.New()

	userStore.On("UpdateName", mock.Anything, userID, "Carol").
		Return(model.User{ID: userID, Name: "Carol"}, nil)

	u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

	user, err := u.UpdateName(ctx, userID, "Carol")
	require.NoError(t, err)
	assert.Equal(t, "Carol", user.Name)
}

func TestUser_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("valid role", func(t *testing.T) {
		userStore := &servermocks.UserStore{}
		userID := uuid.New()
		userStore.On("UpdateRole", mock.Anything, userID, model.RoleAdmin).
			Return(model.User{ID: userID, Role: model.RoleAdmin}, nil)

		u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

		user, err := u.UpdateRole(ctx, userID, "admin")
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		userStore := &servermocks.UserStore{}

		u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

		_, err := u.UpdateRole(ctx, uuid.New(), "superadmin")
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
		userStore.AssertNotCalled(t, "UpdateRole")
	})
}

func TestUser_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	hash, err := password.Hash("old password")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		userStore := &servermocks.UserStore{}
		userID := uuid.New()

		userStore.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Password: hash}, nil)
		userStore.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(newHash string) bool {
			ok, err := password.Verify("new password", newHash)
			return err == nil && ok
		})).Return(nil)

		u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))
		require.NoError(t, u.UpdatePassword(ctx, userID, "old password", "new password"))
	})

	t.Run("wrong old password", func(t *testing.T) {
		userStore := &servermocks.UserStore{}
		userID := uuid.New()

		userStore.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Password: hash}, nil)

		u := NewUser(userStore, &servermocks.Storage{}, logger.New(0))

		err := u.UpdatePassword(ctx, userID, "not the old one", "new password")
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
		userStore.AssertNotCalled(t, "UpdatePassword")
	})
}

func TestUser_Avatar(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := "avatars/" + userID.String()

	t.Run("upload", func(t *testing.T) {
		storage := &servermocks.Storage{}
		storage.On("Upload", mock.Anything, key, mock.Anything, int64(9), "image/png").Return(nil)

		u := NewUser(&servermocks.UserStore{}, storage, logger.New(0))
		require.NoError(t, u.UploadAvatar(ctx, userID, strings.NewReader("img-bytes"), 9, "image/png"))
	})

	t.Run("download present", func(t *testing.T) {
		storage := &servermocks.Storage{}
		storage.On("Exists", mock.Anything, key).Return(true, nil)
		storage.On("Download", mock.Anything, key).
			Return(io.NopCloser(bytes.NewReader([]byte("img-bytes"))), "image/png", nil)

		u := NewUser(&servermocks.UserStore{}, storage, logger.New(0))

		rc, contentType, err := u.DownloadAvatar(ctx, userID)
		require.NoError(t, err)
		defer rc.Close()

		assert.Equal(t, "image/png", contentType)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("img-bytes"), data)
	})

	t.Run("download absent", func(t *testing.T) {
		storage := &servermocks.Storage{}
		storage.On("Exists", mock.Anything, key).Return(false, nil)

		u := NewUser(&servermocks.UserStore{}, storage, logger.New(0))

		_, _, err := u.DownloadAvatar(ctx, userID)
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})

	t.Run("delete", func(t *testing.T) {
		storage := &servermocks.Storage{}
		storage.On("Delete", mock.Anything, key).Return(nil)

		u := NewUser(&servermocks.UserStore{}, storage, logger.New(0))
		require.NoError(t, u.DeleteAvatar(ctx, userID))
	})
}
