package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "visualcrossing.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// handleError maps application errors onto HTTP statuses.
// Provider failures the caller cannot fix surface as 502 or 503.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.BadRequestError:
		statusCode = http.StatusBadRequest
		message = "Forecast provider rejected the request"
	case errorspkg.TooManyRequestsError:
		statusCode = http.StatusTooManyRequests
		message = "Forecast provider quota exceeded"
	case errorspkg.UnauthorizedError:
		statusCode = http.StatusBadGateway
		message = "Forecast provider rejected the configured credentials"
	case errorspkg.InternalServerErrorError:
		statusCode = http.StatusBadGateway
		message = "Forecast provider failed"
	case errorspkg.AccessError:
		statusCode = http.StatusServiceUnavailable
		message = "Forecast provider unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "status", statusCode, "error", err)
	}

	c.JSON(statusCode, ErrorResponse{Error: message, Type: appErr.Type.String()})
}
