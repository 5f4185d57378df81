// Package response renders the service's JSON envelopes. Failures are
// always `{"status":"fail","message":...}`; typed APIErrors, validation
// errors and undecodable request bodies map to their own statuses,
// anything else renders as a generic 500.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/accounts-server/internal/apierrors"
)

type failBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error renders err as a fail envelope and aborts the request.
func Error(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, failBody{Status: "fail", Message: apiErr.Message})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, failBody{Status: "fail", Message: validationMessage(validationErrs)})
		return
	}

	if isMalformedBody(err) {
		c.AbortWithStatusJSON(http.StatusBadRequest, failBody{Status: "fail", Message: "Invalid request body"})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, failBody{Status: "fail", Message: "Something went wrong"})
}

// Message renders a success envelope with a human-readable message.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": "success", "message": message})
}

// isMalformedBody matches the errors ShouldBindJSON returns for bodies
// the decoder cannot process: broken JSON, mismatched field types,
// empty or truncated payloads. These are client errors, not ours.
func isMalformedBody(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation failed"
	}

	// One field at a time keeps the message actionable.
	fieldErr := errs[0]
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldErr.Field())
	}
}
