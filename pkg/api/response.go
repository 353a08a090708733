package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delverhq/delver/pkg/services"
)

// Error codes carried in the response envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimit    = "RATE_LIMIT"
	CodeInternal     = "INTERNAL"
)

// apiError is the error half of the response envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondOK writes the {success, data} envelope.
func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError writes the {success, error} envelope.
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   apiError{Code: code, Message: message},
	})
}

// respondServiceError maps service-layer errors to HTTP error responses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		respondError(c, http.StatusBadRequest, CodeValidation, validErr.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "resource not found")
	case errors.Is(err, services.ErrConflict):
		respondError(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		respondError(c, http.StatusConflict, CodeConflict, "resource already exists")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, CodeForbidden, "access denied")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid credentials")
	default:
		logger.Error("unexpected service error", "error", err)
		respondError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}
