package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/accounts-server/internal/api/http/response"
	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/model"
)

// RequireRole passes requests through only when the authenticated
// user's role is in the given set. It must be composed after
// Authenticate; a missing identity is a wiring error and renders as
// 401, not 403.
func RequireRole(contextManager ContextManager, roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := contextManager.GetUser(c)
		if !ok {
			response.Error(c, apierrors.NewErrUserNotAuthenticated())
			return
		}

		if _, ok := allowed[user.Role]; !ok {
			response.Error(c, apierrors.NewErrPermissionDenied())
			return
		}

		c.Next()
	}
}
