package infrastructure

import (
	"context"

	"visualcrossing.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	forecastAPIChecker ports.HealthChecker
	targetChecker      ports.HealthChecker
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	ForecastAPIChecker ports.HealthChecker
	TargetChecker      ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		forecastAPIChecker: config.ForecastAPIChecker,
		targetChecker:      config.TargetChecker,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.forecastAPIChecker != nil {
		results["forecastAPI"] = s.forecastAPIChecker.Check(ctx)
	}

	if s.targetChecker != nil {
		results["target"] = s.targetChecker.Check(ctx)
	}

	return results
}
