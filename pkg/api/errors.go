package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/synckairos/synckairos/pkg/engine"
	"github.com/synckairos/synckairos/pkg/store"
)

// Error codes carried in the response envelope.
const (
	CodeValidation             = "VALIDATION"
	CodeSessionNotFound        = "SESSION_NOT_FOUND"
	CodeSessionExists          = "SESSION_EXISTS"
	CodeInvalidState           = "INVALID_STATE"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
	CodeParticipantNotFound    = "PARTICIPANT_NOT_FOUND"
	CodeStoreUnavailable       = "STORE_UNAVAILABLE"
	CodeStateDeserialization   = "STATE_DESERIALIZATION"
	CodeRateLimited            = "RATE_LIMIT_EXCEEDED"
	CodeTimeout                = "TIMEOUT"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeInternal               = "INTERNAL"
)

// ErrRateLimited is returned by the rate-limit middleware.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrorBody is the envelope every error response carries.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes one failure. Retryable tells clients whether a
// backoff-retry can succeed.
type ErrorDetail struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id"`
	Retryable     bool   `json:"retryable"`
}

// mapError classifies a handler error into status, code, and retryability.
func mapError(err error) (status int, code string, retryable bool) {
	var validErr *engine.ValidationError
	switch {
	case errors.As(err, &validErr):
		return http.StatusBadRequest, CodeValidation, false
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusNotFound, CodeSessionNotFound, false
	case errors.Is(err, store.ErrSessionExists):
		return http.StatusConflict, CodeSessionExists, false
	case errors.Is(err, engine.ErrInvalidState):
		return http.StatusConflict, CodeInvalidState, false
	case errors.Is(err, store.ErrConcurrentModification):
		return http.StatusConflict, CodeConcurrentModification, true
	case errors.Is(err, engine.ErrParticipantNotFound):
		return http.StatusBadRequest, CodeParticipantNotFound, false
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, CodeStoreUnavailable, true
	case errors.Is(err, store.ErrStateDeserialization):
		return http.StatusInternalServerError, CodeStateDeserialization, false
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, CodeRateLimited, true
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout, false
	}
	return http.StatusInternalServerError, CodeInternal, false
}

// errorHandler is the central echo error handler: every error leaving a
// handler becomes the {error:{code,message,correlation_id,retryable}}
// envelope.
func errorHandler(c *echo.Context, err error) {
	correlationID := correlationIDFrom(c)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := he.Message
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		writeError(c, he.Code, codeForStatus(he.Code), msg, false, correlationID)
		return
	}

	status, code, retryable := mapError(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unhandled request error",
			"error", err, "correlation_id", correlationID, "path", c.Request().URL.Path)
	}
	writeError(c, status, code, err.Error(), retryable, correlationID)
}

func writeError(c *echo.Context, status int, code, message string, retryable bool, correlationID string) {
	body := ErrorBody{Error: ErrorDetail{
		Code:          code,
		Message:       message,
		CorrelationID: correlationID,
		Retryable:     retryable,
	}}
	if err := c.JSON(status, body); err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}

// codeForStatus covers echo.HTTPError values raised by routing and binding.
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusNotFound:
		return CodeSessionNotFound
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusGatewayTimeout:
		return CodeTimeout
	case http.StatusServiceUnavailable:
		return CodeStoreUnavailable
	}
	return CodeInternal
}
