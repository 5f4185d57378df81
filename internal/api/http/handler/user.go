package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/api/http/middleware"
	"github.com/dtroode/accounts-server/internal/api/http/response"
	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// UserService covers profile reads and updates plus avatar storage.
type UserService interface {
	List(ctx context.Context, page, limit int) ([]model.User, int64, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (model.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error
	UploadAvatar(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) error
	DownloadAvatar(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
	DeleteAvatar(ctx context.Context, id uuid.UUID) error
}

// User handles the /users route group. Every route requires a user in
// the request context.
type User struct {
	userService    UserService
	contextManager middleware.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler instance.
func NewUser(userService UserService, contextManager middleware.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Me handles GET /users/me.
func (h *User) Me(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		response.Error(c, apierrors.NewErrUserNotAuthenticated())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": filterUser(user)},
	})
}

// List handles GET /users/users?page=&limit=.
func (h *User) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, total, err := h.userService.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": total,
		"users":   filterUsers(users),
	})
}

// UpdateName handles PUT /users/name.
func (h *User) UpdateName(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		response.Error(c, apierrors.NewErrUserNotAuthenticated())
		return
	}

	var req updateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.userService.UpdateName(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": filterUser(updated)},
	})
}

// UpdateRole handles PUT /users/role. The role value is validated
// against the closed enum before it reaches storage.
func (h *User) UpdateRole(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		response.Error(c, apierrors.NewErrUserNotAuthenticated())
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.userService.UpdateRole(c.Request.Context(), user.ID, req.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": filterUser(updated)},
	})
}

// UpdatePassword handles PUT /users/password.
func (h *User) UpdatePassword(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		response.Error(c, apierrors.NewErrUserNotAuthenticated())
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password updated successfully")
}

// UploadAvatar handles POST /users/avatar with a multipart `avatar`
// file field.
func (h *User) UploadAvatar(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		response.Error(c, apierrors.NewErrUserNotAuthenticated())
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, apierrors.NewErrValidation("Avatar file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.userService.UploadAvatar(c.Request.Context(), user.ID, file, fileHeader.Size, contentType); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Avatar uploaded successfully")
}

// GetAvatar handles GET /users/avatar.
func (h *User) GetAvatar(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		response.Error(c, apierrors.NewErrUserNotAuthenticated())
		return
	}

	reader, contentType, err := h.userService.DownloadAvatar(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer reader.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Error("User handler: failed to stream avatar",
			"user_id", user.ID,
			"error", err.Error())
	}
}

// DeleteAvatar handles DELETE /users/avatar.
func (h *User) DeleteAvatar(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		response.Error(c, apierrors.NewErrUserNotAuthenticated())
		return
	}

	if err := h.userService.DeleteAvatar(c.Request.Context(), user.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Avatar deleted successfully")
}
