// Package apierrors defines the typed failures the service exposes to
// clients. Every APIError maps to exactly one HTTP status; anything that is
// not an APIError renders as a generic 500.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is a client-visible failure with a fixed HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError with an arbitrary status and message.
func New(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func NewErrEmptyPassword() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Empty password"}
}

func NewErrExceededMaxPasswordLength(max int) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("Exceeded maximum password length: %d", max)}
}

func NewErrInvalidHashFormat() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: "Invalid password hash format"}
}

func NewErrHashingError() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: "Invalid hashing format"}
}

func NewErrInvalidToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Invalid token"}
}

func NewErrWrongCredentials() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Wrong credentials"}
}

func NewErrEmailExists() *APIError {
	return &APIError{Status: http.StatusConflict, Message: "Email already exists"}
}

func NewErrEmailNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "Email not found"}
}

func NewErrWrongOldPassword() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Old password is incorrect"}
}

func NewErrAvatarNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "Avatar not found"}
}

func NewErrUserNoLongerExists() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "User no longer exists"}
}

func NewErrTokenNotProvided() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Token not provided"}
}

func NewErrPermissionDenied() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Permission denied"}
}

func NewErrUserNotAuthenticated() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "User not authenticated"}
}

func NewErrValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}
