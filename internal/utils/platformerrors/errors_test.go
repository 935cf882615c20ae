package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeForbidden, http.StatusForbidden},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeRateLimited, http.StatusTooManyRequests},
		{ErrorTypeExternal, http.StatusInternalServerError},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := ErrorTypeToHTTPStatus(tt.errorType); got != tt.want {
			t.Errorf("ErrorTypeToHTTPStatus(%s) = %d, want %d", tt.errorType, got, tt.want)
		}
	}
}

func TestIsErrorTypeThroughWrapping(t *testing.T) {
	base := NewError(ErrorTypeRateLimited, LayerInfrastructure, "quota exhausted")
	wrapped := fmt.Errorf("completing request: %w", base)

	if !IsErrorType(wrapped, ErrorTypeRateLimited) {
		t.Error("IsErrorType must see through fmt.Errorf wrapping")
	}
	if IsErrorType(wrapped, ErrorTypeNotFound) {
		t.Error("IsErrorType matched the wrong type")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeRateLimited) {
		t.Error("plain errors must not match any type")
	}
}

func TestAsErrorPreservesType(t *testing.T) {
	base := NewError(ErrorTypeNotFound, LayerRepository, "persona not found")
	rewrapped := AsError(LayerService, base, "loading persona")

	if rewrapped.Type != ErrorTypeNotFound {
		t.Errorf("Type = %s, want NOT_FOUND", rewrapped.Type)
	}
	if rewrapped.Layer != LayerService {
		t.Errorf("Layer = %s, want service", rewrapped.Layer)
	}
	if !errors.Is(rewrapped, base) {
		t.Error("cause chain broken")
	}
}

func TestAsErrorDefaultsToInternal(t *testing.T) {
	rewrapped := AsError(LayerService, errors.New("boom"), "doing work")
	if rewrapped.Type != ErrorTypeInternal {
		t.Errorf("Type = %s, want INTERNAL", rewrapped.Type)
	}
}
