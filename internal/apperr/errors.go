// Package apperr defines the error kinds surfaced to API callers and their
// mapping onto HTTP responses.
package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyAttempts = errors.New("too many attempts")
	ErrUnavailable     = errors.New("service unavailable")
)

// Error pairs a kind with a message that is safe to show to the caller.
type Error struct {
	Kind    error
	Message string
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// CheckText rejects values Postgres cannot store in a text column.
func CheckText(field, value string) error {
	if strings.ContainsRune(value, 0) {
		return New(ErrValidation, field+" must not contain NUL characters")
	}
	return nil
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Status returns the HTTP status and caller-facing message for err.
func Status(err error) (int, string) {
	msg := ""
	var appErr *Error
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, fallback(msg, "Invalid request")
	case errors.Is(err, ErrConflict):
		return http.StatusBadRequest, fallback(msg, "Conflict")
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, fallback(msg, "Could not validate credentials")
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, fallback(msg, "Not found")
	case errors.Is(err, ErrTooManyAttempts):
		return http.StatusTooManyRequests, fallback(msg, "Too many attempts, try again later")
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// Respond writes err as a JSON error body and aborts the request. Unexpected
// errors are logged; their text never reaches the client.
func Respond(c *gin.Context, logger *zap.Logger, err error) {
	status, msg := Status(err)
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: msg})
}

func fallback(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
