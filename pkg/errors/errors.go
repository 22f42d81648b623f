package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// Remote provider errors - one per documented failure status of the forecast API
	ErrorTypeBadRequest
	ErrorTypeUnauthorized
	ErrorTypeTooManyRequests
	ErrorTypeInternalServer

	// Catch-all for any other non-success status or transport-level failure
	ErrorTypeAccess

	// Local errors - parameter and configuration problems detected before any request
	ErrorTypeValidation
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeBadRequest:
		return "BAD_REQUEST"
	case ErrorTypeUnauthorized:
		return "UNAUTHORIZED"
	case ErrorTypeTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case ErrorTypeInternalServer:
		return "INTERNAL_SERVER_ERROR"
	case ErrorTypeAccess:
		return "ACCESS_ERROR"
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the adapters
const (
	BadRequestError          = ErrorTypeBadRequest
	UnauthorizedError        = ErrorTypeUnauthorized
	TooManyRequestsError     = ErrorTypeTooManyRequests
	InternalServerErrorError = ErrorTypeInternalServer
	AccessError              = ErrorTypeAccess
	ValidationError          = ErrorTypeValidation
	ConfigurationError       = ErrorTypeConfiguration
)

// AppError is the single error type surfaced by this module.
// StatusCode is the HTTP status reported by the forecast provider, 0 when no response was received.
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	prefix := e.Type.String()
	if e.StatusCode != 0 {
		prefix = fmt.Sprintf("%s [status %d]", prefix, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Remote provider error constructors
func NewBadRequestError(message string) *AppError {
	return &AppError{Type: BadRequestError, Message: message, StatusCode: 400}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: UnauthorizedError, Message: message, StatusCode: 401}
}

func NewTooManyRequestsError(message string) *AppError {
	return &AppError{Type: TooManyRequestsError, Message: message, StatusCode: 429}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Type: InternalServerErrorError, Message: message, StatusCode: 500}
}

// NewAccessError reports any failure that is not one of the documented statuses.
// statusCode is 0 when the request never produced a response.
func NewAccessError(message string, statusCode int, cause error) *AppError {
	return &AppError{
		Type:       AccessError,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// Local error constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// KindOf returns the type of the first AppError in err's chain, or ErrorTypeUnknown.
func KindOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsBadRequest(err error) bool {
	return KindOf(err) == BadRequestError
}

func IsUnauthorized(err error) bool {
	return KindOf(err) == UnauthorizedError
}

func IsTooManyRequests(err error) bool {
	return KindOf(err) == TooManyRequestsError
}

func IsInternalServerError(err error) bool {
	return KindOf(err) == InternalServerErrorError
}

func IsAccessError(err error) bool {
	return KindOf(err) == AccessError
}

func IsValidationError(err error) bool {
	return KindOf(err) == ValidationError
}

func IsConfigurationError(err error) bool {
	return KindOf(err) == ConfigurationError
}
