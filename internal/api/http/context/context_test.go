package context

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	m := NewManager()

	user := model.User{ID: uuid.New(), Email: "a@b.c", Role: model.RoleUser}
	m.SetUser(c, user)

	got, ok := m.GetUser(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestManager_GetUser_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	m := NewManager()

	_, ok := m.GetUser(c)
	assert.False(t, ok)
}

func TestManager_GetUser_WrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("current_user", "not a user")

	m := NewManager()
	_, ok := m.GetUser(c)
	assert.False(t, ok)
}
