// Package handlers contains HTTP request handlers for the KPA form service.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the failure payload shared by all endpoints.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// respondValidationError reports a malformed request body or query with
// per-field detail. Only field names and rule tags are echoed, never
// internal state.
func respondValidationError(c *gin.Context, err error) {
	details := map[string]string{}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			details[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Message: "invalid request",
		Details: details,
	})
}

// logAndRespondInternal logs the full error server-side and returns a
// generic internal failure. No storage or signing detail reaches the caller.
func logAndRespondInternal(c *gin.Context, err error, op string) {
	slog.Error(op, "error", err, "path", c.Request.URL.Path)
	respondError(c, http.StatusInternalServerError, "internal server error")
}
