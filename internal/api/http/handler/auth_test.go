package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/apierrors"
	"github.com/dtroode/accounts-server/internal/logger"
	servermocks "github.com/dtroode/accounts-server/internal/mocks"
	"github.com/dtroode/accounts-server/internal/model"
)

func newAuthEngine(t *testing.T, svc AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAuth(svc, time.Hour, logger.New(0))

	engine := gin.New()
	engine.POST("/auth/register", h.Register)
	engine.POST("/auth/login", h.Login)
	engine.GET("/auth/verify", h.Verify)
	engine.POST("/auth/forgot-password", h.ForgotPassword)
	engine.POST("/auth/reset-password", h.ResetPassword)

	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Register", mock.Anything, "Alice", "a@b.c", "password123").
		Return(model.User{ID: uuid.New(), Email: "a@b.c"}, nil)

	engine := newAuthEngine(t, svc)

	w := postJSON(engine, "/auth/register",
		`{"name":"Alice","email":"a@b.c","password":"password123","passwordConfirm":"password123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful")
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	tt := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"email":"a@b.c","password":"password123","passwordConfirm":"password123"}`},
		{name: "bad email", body: `{"name":"Alice","email":"not-an-email","password":"password123","passwordConfirm":"password123"}`},
		{name: "short password", body: `{"name":"Alice","email":"a@b.c","password":"abc","passwordConfirm":"abc"}`},
		{name: "confirm mismatch", body: `{"name":"Alice","email":"a@b.c","password":"password123","passwordConfirm":"different123"}`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			svc := &servermocks.AuthService{}
			engine := newAuthEngine(t, svc)

			w := postJSON(engine, "/auth/register", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"fail"`)
			svc.AssertNotCalled(t, "Register")
		})
	}
}

func TestAuthHandler_MalformedBody(t *testing.T) {
	tt := []struct {
		name string
		body string
	}{
		{name: "truncated json", body: `{"email":`},
		{name: "wrong field type", body: `{"email":123,"password":"password123"}`},
		{name: "empty body", body: ``},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			svc := &servermocks.AuthService{}
			engine := newAuthEngine(t, svc)

			w := postJSON(engine, "/auth/login", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"status":"fail","message":"Invalid request body"}`, w.Body.String())
			svc.AssertNotCalled(t, "Login")
		})
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Register", mock.Anything, "Alice", "a@b.c", "password123").
		Return(model.User{}, apierrors.NewErrEmailExists())

	engine := newAuthEngine(t, svc)

	w := postJSON(engine, "/auth/register",
		`{"name":"Alice","email":"a@b.c","password":"password123","passwordConfirm":"password123"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"status":"fail","message":"Email already exists"}`, w.Body.String())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Login", mock.Anything, "a@b.c", "password123").Return("signed-token", nil)

	engine := newAuthEngine(t, svc)

	w := postJSON(engine, "/auth/login", `{"email":"a@b.c","password":"password123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_WrongCredentials(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Login", mock.Anything, "a@b.c", "wrong").Return("", apierrors.NewErrWrongCredentials())

	engine := newAuthEngine(t, svc)

	w := postJSON(engine, "/auth/login", `{"email":"a@b.c","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"fail","message":"Wrong credentials"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_Verify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &servermocks.AuthService{}
		svc.On("VerifyEmail", mock.Anything, "tok").Return(nil)

		engine := newAuthEngine(t, svc)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/verify?token=tok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "verified successfully")
	})

	t.Run("missing token", func(t *testing.T) {
		svc := &servermocks.AuthService{}
		engine := newAuthEngine(t, svc)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/verify", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "VerifyEmail")
	})

	t.Run("expired token", func(t *testing.T) {
		svc := &servermocks.AuthService{}
		svc.On("VerifyEmail", mock.Anything, "tok").Return(apierrors.NewErrInvalidToken())

		engine := newAuthEngine(t, svc)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/verify?token=tok", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("ForgotPassword", mock.Anything, "a@b.c").Return(nil)

	engine := newAuthEngine(t, svc)

	w := postJSON(engine, "/auth/forgot-password", `{"email":"a@b.c"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset link sent")
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &servermocks.AuthService{}
		svc.On("ResetPassword", mock.Anything, "tok", "new password1").Return(nil)

		engine := newAuthEngine(t, svc)

		w := postJSON(engine, "/auth/reset-password",
			`{"token":"tok","newPassword":"new password1","newPasswordConfirm":"new password1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "successfully reset")
	})

	t.Run("confirm mismatch", func(t *testing.T) {
		svc := &servermocks.AuthService{}
		engine := newAuthEngine(t, svc)

		w := postJSON(engine, "/auth/reset-password",
			`{"token":"tok","newPassword":"new password1","newPasswordConfirm":"other password"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ResetPassword")
	})
}
