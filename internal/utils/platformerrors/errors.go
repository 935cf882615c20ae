// Package platformerrors defines the error taxonomy shared across all
// layers. Every error crossing a layer boundary is a PlatformError so
// the HTTP layer can map it to a status code without string matching.
package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrorType is the category of a failure.
type ErrorType string

const (
	ErrorTypeNotFound      ErrorType = "NOT_FOUND"
	ErrorTypeValidation    ErrorType = "VALIDATION"
	ErrorTypeConflict      ErrorType = "CONFLICT"
	ErrorTypeUnauthorized  ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden     ErrorType = "FORBIDDEN"
	ErrorTypeInternal      ErrorType = "INTERNAL"
	ErrorTypeExternal      ErrorType = "EXTERNAL"
	ErrorTypeDatabaseError ErrorType = "DATABASE_ERROR"
	// ErrorTypeRateLimited marks quota exhaustion at the completion
	// provider. Workflows intercept it and degrade instead of surfacing
	// an error to the caller.
	ErrorTypeRateLimited ErrorType = "RATE_LIMITED"
)

// Layer names where in the stack the error was raised.
type Layer string

const (
	LayerRepository     Layer = "repository"
	LayerService        Layer = "service"
	LayerHandler        Layer = "handler"
	LayerInfrastructure Layer = "infrastructure"
)

type PlatformError struct {
	UUID      string
	Type      ErrorType
	Message   string
	Err       error
	Layer     Layer
	Timestamp time.Time
}

func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s][%s] %s: %v", e.Layer, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s][%s] %s", e.Layer, e.Type, e.Message)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewError creates a PlatformError without an underlying cause.
func NewError(errorType ErrorType, layer Layer, message string) *PlatformError {
	return NewErrorWithContext(errorType, layer, message, nil)
}

// NewErrorWithContext creates a PlatformError wrapping a cause.
func NewErrorWithContext(errorType ErrorType, layer Layer, message string, err error) *PlatformError {
	return &PlatformError{
		UUID:      uuid.NewString(),
		Type:      errorType,
		Message:   message,
		Err:       err,
		Layer:     layer,
		Timestamp: time.Now().UTC(),
	}
}

// AsError re-wraps err with layer context, preserving the type of an
// existing PlatformError so status mapping survives layer crossings.
func AsError(layer Layer, err error, message string) *PlatformError {
	if err == nil {
		return nil
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return NewErrorWithContext(platformErr.Type, layer, fmt.Sprintf("%s: %s", message, platformErr.Message), platformErr)
	}
	return NewErrorWithContext(ErrorTypeInternal, layer, message, err)
}

// ErrorTypeToHTTPStatus maps error types to HTTP status codes.
// External failures map to 500 so no provider detail leaks to callers.
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeConflict:
		return http.StatusConflict
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeForbidden:
		return http.StatusForbidden
	case ErrorTypeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// IsErrorType reports whether err is a PlatformError of the given type.
func IsErrorType(err error, errorType ErrorType) bool {
	if err == nil {
		return false
	}
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Type == errorType
	}
	return false
}

// LogError emits a structured log entry for a platform error.
func LogError(logger zerolog.Logger, err *PlatformError) {
	if err == nil {
		return
	}

	event := logger.Error().
		Str("error_uuid", err.UUID).
		Str("error_type", string(err.Type)).
		Str("layer", string(err.Layer)).
		Time("timestamp_utc", err.Timestamp)
	if err.Err != nil {
		event = event.Err(err.Err)
	}
	event.Msg(err.Message)
}
