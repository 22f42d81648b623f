package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(ConfigurationError, "config load failed", cause)
			},
			expected: "CONFIGURATION_ERROR: config load failed (caused by: original error)",
		},
		{
			name: "ErrorWithStatus",
			setup: func() *AppError {
				return NewUnauthorizedError("invalid API key")
			},
			expected: "UNAUTHORIZED [status 401]: invalid API key",
		},
		{
			name: "AccessErrorWithStatusAndCause",
			setup: func() *AppError {
				return NewAccessError("unexpected status", 503, fmt.Errorf("maintenance"))
			},
			expected: "ACCESS_ERROR [status 503]: unexpected status (caused by: maintenance)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewAccessError("request failed", 0, cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewBadRequestError("bad").Unwrap())
}

func TestStatusConstructors(t *testing.T) {
	tests := []struct {
		name           string
		err            *AppError
		expectedType   ErrorType
		expectedStatus int
	}{
		{"BadRequest", NewBadRequestError("x"), BadRequestError, 400},
		{"Unauthorized", NewUnauthorizedError("x"), UnauthorizedError, 401},
		{"TooManyRequests", NewTooManyRequestsError("x"), TooManyRequestsError, 429},
		{"InternalServer", NewInternalServerError("x"), InternalServerErrorError, 500},
		{"Access", NewAccessError("x", 404, nil), AccessError, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedType, tt.err.Type)
			assert.Equal(t, tt.expectedStatus, tt.err.StatusCode)
		})
	}
}

func TestTypeCheckers_FollowWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fetch forecast: %w", NewTooManyRequestsError("quota exceeded"))

	assert.True(t, IsTooManyRequests(wrapped))
	assert.False(t, IsUnauthorized(wrapped))
	assert.False(t, IsAccessError(wrapped))
	assert.Equal(t, TooManyRequestsError, KindOf(wrapped))
}

func TestTypeCheckers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{"IsBadRequest", NewBadRequestError("x"), IsBadRequest},
		{"IsUnauthorized", NewUnauthorizedError("x"), IsUnauthorized},
		{"IsTooManyRequests", NewTooManyRequestsError("x"), IsTooManyRequests},
		{"IsInternalServerError", NewInternalServerError("x"), IsInternalServerError},
		{"IsAccessError", NewAccessError("x", 0, nil), IsAccessError},
		{"IsValidationError", NewValidationError("x"), IsValidationError},
		{"IsConfigurationError", NewConfigurationError("x", nil), IsConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.checker(tt.err))
			assert.False(t, tt.checker(fmt.Errorf("plain error")))
			assert.False(t, tt.checker(nil))
		})
	}
}

func TestKindOf_UnknownForForeignErrors(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, KindOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, KindOf(nil))
	assert.Equal(t, "UNKNOWN_ERROR", ErrorTypeUnknown.String())
}
