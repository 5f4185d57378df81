package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/password"
)

const (
	// VerificationTokenDuration bounds how long an emailed
	// account-verification link stays valid.
	VerificationTokenDuration = 24 * time.Hour
	// ResetTokenDuration bounds how long an emailed password-reset
	// link stays valid.
	ResetTokenDuration = 30 * time.Minute
)

// Auth implements registration, login and the email-token flows
// (account verification, password reset).
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	mailer       model.Mailer
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	mailer model.Mailer,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		mailer:       mailer,
		logger:       logger,
	}
}

// Register creates an unverified user and emails a verification link.
func (a *Auth) Register(ctx context.Context, name, email, plainPassword string) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, apierrors.NewErrEmailExists()
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.User{}, err
	}

	verificationToken, err := newEmailToken()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to generate verification token: %w", err)
	}
	expiresAt := time.Now().Add(VerificationTokenDuration)

	user := model.User{
		ID:                uuid.New(),
		Name:              name,
		Email:             email,
		Password:          hash,
		Role:              model.RoleUser,
		Verified:          false,
		VerificationToken: &verificationToken,
		TokenExpiresAt:    &expiresAt,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	created, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		// a concurrent registration won between the lookup and the insert
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, apierrors.NewErrEmailExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.mailer.SendVerificationEmail(ctx, created.Email, created.Name, verificationToken); err != nil {
		a.logger.Error("Auth service: failed to send verification email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to send verification email: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", email,
		"user_id", created.ID)

	return created, nil
}

// Login verifies credentials and issues a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, plainPassword string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierrors.NewErrWrongCredentials()
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	match, err := password.Verify(plainPassword, user.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"email", email,
			"error", err.Error())
		return "", err
	}
	if !match {
		a.logger.Info("Auth service: password mismatch",
			"email", email)
		return "", apierrors.NewErrWrongCredentials()
	}

	token, err := a.tokenManager.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", email,
		"user_id", user.ID)

	return token, nil
}

// VerifyEmail consumes an emailed verification token and marks the
// account verified.
func (a *Auth) VerifyEmail(ctx context.Context, token string) error {
	user, err := a.userStore.GetByVerificationToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrInvalidToken()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by verification token: %w", err)
	}

	if user.TokenExpiresAt == nil || time.Now().After(*user.TokenExpiresAt) {
		a.logger.Info("Auth service: verification token expired",
			"user_id", user.ID)
		return apierrors.NewErrInvalidToken()
	}

	if err := a.userStore.SetVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	a.logger.Info("Auth service: user verified successfully",
		"user_id", user.ID)

	return nil
}

// ForgotPassword stores a short-lived reset token and emails a reset
// link to the given address.
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrEmailNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken, err := newEmailToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(ResetTokenDuration)
	if err := a.userStore.SetVerificationToken(ctx, user.ID, resetToken, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := a.mailer.SendPasswordResetEmail(ctx, user.Email, user.Name, resetToken); err != nil {
		a.logger.Error("Auth service: failed to send password reset email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	a.logger.Info("Auth service: password reset requested",
		"user_id", user.ID)

	return nil
}

// ResetPassword consumes an emailed reset token and replaces the
// stored password hash.
func (a *Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := a.userStore.GetByVerificationToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrInvalidToken()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by reset token: %w", err)
	}

	if user.TokenExpiresAt == nil || time.Now().After(*user.TokenExpiresAt) {
		a.logger.Info("Auth service: reset token expired",
			"user_id", user.ID)
		return apierrors.NewErrInvalidToken()
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	// UpdatePassword clears the token alongside the hash, so a reset
	// link cannot be replayed.
	if err := a.userStore.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password reset successfully",
		"user_id", user.ID)

	return nil
}

func newEmailToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
