package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/accounts-server/internal/api/http/response"
	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// AuthService covers registration, login and the email-token flows.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Auth handles the /auth route group.
type Auth struct {
	authService   AuthService
	tokenLifetime time.Duration
	logger        *logger.Logger
}

// NewAuth creates a new Auth handler instance. tokenLifetime bounds
// the Max-Age of the login cookie so cookie and token expire together.
func NewAuth(authService AuthService, tokenLifetime time.Duration, logger *logger.Logger) *Auth {
	return &Auth{
		authService:   authService,
		tokenLifetime: tokenLifetime,
		logger:        logger,
	}
}

// Register handles POST /auth/register.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Registration successful! Please check your email to verify your account.")
}

// Login handles POST /auth/login. The issued token travels both in the
// body and in a `token` cookie.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie("token", token, int(h.tokenLifetime.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success", "token": token})
}

// Verify handles GET /auth/verify?token=.
func (h *Auth) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, apierrors.NewErrValidation("Token is required"))
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Email verified successfully")
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *Auth) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password reset link sent to your email")
}

// ResetPassword handles POST /auth/reset-password.
func (h *Auth) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password has been successfully reset")
}
