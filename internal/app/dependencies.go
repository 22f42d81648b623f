package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"visualcrossing.app/internal/adapters/external"
	"visualcrossing.app/internal/adapters/infrastructure"
	"visualcrossing.app/internal/config"
	"visualcrossing.app/internal/ports"
)

// ApplicationPorts groups the adapters shared by every use case
type ApplicationPorts struct {
	Transport ports.ForecastTransport
	Logger    ports.Logger
	Metrics   *infrastructure.PrometheusTransportMetrics
}

type DependencyContainer struct {
	config  DependencyConfig
	session *http.Client
	ports   *ApplicationPorts
}

type DependencyConfig struct {
	Forecast config.ForecastConfig
	// Registerer receives the transport collectors; nil means the default registry
	Registerer prometheus.Registerer
	// Session overrides the shared HTTP session, mainly for tests
	Session *http.Client
}

func NewDependencyContainer(depConfig DependencyConfig) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: depConfig,
	}

	container.initializeSession()

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// initializeSession creates the session shared by all requests.
// The transport never closes a session it was given; Cleanup does.
func (c *DependencyContainer) initializeSession() {
	if c.config.Session != nil {
		c.session = c.config.Session
		return
	}

	c.session = &http.Client{
		Timeout:   c.config.Forecast.HTTPTimeout(),
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	// If file logging is enabled, create a file logger
	if c.config.Forecast.EnableLogging && c.config.Forecast.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Forecast.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			logger = fileLogger
			slog.Info("File logging enabled", "path", c.config.Forecast.LogFilePath)
		}
	}

	var transport ports.ForecastTransport = external.NewVisualCrossingTransport(external.VisualCrossingTransportParams{
		BaseURL: c.config.Forecast.BaseURL,
		Session: c.session,
		Logger:  logger,
	})

	if c.config.Forecast.EnableLogging {
		transport = external.NewTransportLoggingDecorator(transport, logger)
		slog.Info("Forecast transport logging enabled")
	}

	metrics := infrastructure.NewPrometheusTransportMetrics(c.config.Registerer)
	transport = external.NewTransportMetricsDecorator(transport, metrics)

	c.ports = &ApplicationPorts{
		Transport: transport,
		Logger:    logger,
		Metrics:   metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ApplicationPorts {
	return c.ports
}

// MetricsHandler serves the registry the transport collectors were registered with
func (c *DependencyContainer) MetricsHandler() http.Handler {
	if gatherer, ok := c.config.Registerer.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// Cleanup releases the shared session's idle connections
func (c *DependencyContainer) Cleanup() {
	if c.session != nil {
		c.session.CloseIdleConnections()
	}
}
