// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"visualcrossing.app/internal/core/forecast"
	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	forecastUseCase ForecastUseCase
	healthChecker   ports.SystemHealthChecker
	statsProvider   StatsProvider
	metricsHandler  http.Handler
	server          *http.Server
}

// Use case interfaces that the HTTP adapter depends on
type ForecastUseCase interface {
	GetForecast(ctx context.Context, request forecast.ForecastRequest) <-chan forecast.FetchResult
}

type StatsProvider interface {
	GetStats() map[string]interface{}
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	ForecastUseCase ForecastUseCase
	HealthChecker   ports.SystemHealthChecker
	StatsProvider   StatsProvider
	// MetricsHandler serves /metrics; defaults to the default Prometheus registry
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	server := &HTTPServerAdapter{
		router:          gin.Default(),
		config:          opts.Config,
		forecastUseCase: opts.ForecastUseCase,
		healthChecker:   opts.HealthChecker,
		statsProvider:   opts.StatsProvider,
		metricsHandler:  metricsHandler,
	}

	server.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Config.Port),
		Handler: server.router,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ForecastUseCase == nil {
		return errors.NewValidationError("forecast use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.StatsProvider == nil {
		return errors.NewValidationError("stats provider is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/forecast", s.getForecast)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start begins the HTTP server and blocks until it stops.
// A graceful Shutdown makes Start return nil.
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
