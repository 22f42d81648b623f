package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"visualcrossing.app/internal/ports"
)

// HealthResponse represents the HTTP response for GET /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: ports.StatusHealthy, Components: components}
	statusCode := http.StatusOK
	for _, component := range components {
		if component.Status != ports.StatusHealthy {
			response.Status = ports.StatusUnhealthy
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, response)
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")
	c.JSON(http.StatusOK, gin.H{"transport": s.statsProvider.GetStats()})
}
