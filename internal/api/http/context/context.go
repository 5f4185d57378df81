package context

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/accounts-server/internal/model"
)

// userKey is the gin context key the authenticated user is stored under.
const userKey = "current_user"

// Manager stores and retrieves the authenticated user on a request
// context. Authentication middleware writes it once; handlers and the
// authorization gate only read.
type Manager struct{}

// NewManager creates a new request context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUser attaches the resolved user to the request context.
func (m *Manager) SetUser(c *gin.Context, user model.User) {
	c.Set(userKey, user)
}

// GetUser retrieves the authenticated user from the request context.
// The boolean reports whether authentication middleware ran for this
// request.
func (m *Manager) GetUser(c *gin.Context) (model.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}

	user, ok := value.(model.User)
	if !ok {
		return model.User{}, false
	}

	return user, true
}
