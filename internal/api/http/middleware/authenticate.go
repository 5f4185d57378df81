package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/api/http/response"
	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// IdentityResolver maps a verified token subject to a live account.
type IdentityResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// ContextManager attaches the authenticated user to a request context
// and retrieves it again.
type ContextManager interface {
	SetUser(c *gin.Context, user model.User)
	GetUser(c *gin.Context) (model.User, bool)
}

// Authenticate validates bearer tokens and attaches the resolved user
// to the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	resolver       IdentityResolver
	contextManager ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokenManager model.TokenManager,
	resolver IdentityResolver,
	contextManager ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		resolver:       resolver,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle extracts the token from the Authorization header or the
// `token` cookie, verifies it and resolves the subject against
// storage. The resolved role always comes from storage, never from
// token claims.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, apierrors.NewErrTokenNotProvided())
			return
		}

		userID, err := m.tokenManager.ParseToken(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", c.Request.URL.Path,
				"error", err.Error())
			response.Error(c, apierrors.NewErrInvalidToken())
			return
		}

		user, err := m.resolver.GetByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Info("Authenticate middleware: subject not resolvable",
				"user_id", userID,
				"error", err.Error())
			response.Error(c, err)
			return
		}

		m.contextManager.SetUser(c, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie("token")
	if err != nil {
		return ""
	}
	return cookie
}
