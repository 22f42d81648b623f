package infrastructure

import (
	"context"

	"visualcrossing.app/internal/ports"
)

// ForecastAPIHealthChecker reports whether the forecast API can be called at all.
// No request is made: the remote is the only authority on the key.
type ForecastAPIHealthChecker struct {
	baseURL          string
	apiKeyConfigured bool
}

// NewForecastAPIHealthChecker creates a new forecast API health checker
func NewForecastAPIHealthChecker(baseURL, apiKey string) *ForecastAPIHealthChecker {
	return &ForecastAPIHealthChecker{
		baseURL:          baseURL,
		apiKeyConfigured: apiKey != "",
	}
}

// Check verifies the forecast API configuration
func (f *ForecastAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "forecastAPI",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"baseURL":          f.baseURL,
			"apiKeyConfigured": f.apiKeyConfigured,
		},
	}

	if !f.apiKeyConfigured {
		status.Status = ports.StatusUnhealthy
		status.Error = "forecast API key is not configured"
	}

	return status
}

// TargetHealthChecker reports the default forecast target served when a request omits one
type TargetHealthChecker struct {
	latitude  float64
	longitude float64
	days      int
	language  string
}

// NewTargetHealthChecker creates a new default target health checker
func NewTargetHealthChecker(latitude, longitude float64, days int, language string) *TargetHealthChecker {
	return &TargetHealthChecker{
		latitude:  latitude,
		longitude: longitude,
		days:      days,
		language:  language,
	}
}

// Check reports the default target
func (t *TargetHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	return ports.HealthStatus{
		Component: "target",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"latitude":  t.latitude,
			"longitude": t.longitude,
			"days":      t.days,
			"language":  t.language,
		},
	}
}
