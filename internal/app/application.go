package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"visualcrossing.app/internal/adapters/api"
	"visualcrossing.app/internal/adapters/infrastructure"
	"visualcrossing.app/internal/config"
	"visualcrossing.app/internal/core/forecast"
)

type Application struct {
	config *config.Config

	// Use Cases
	forecastUseCase *forecast.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter
	router      *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationFromConfig(cfg)
}

// NewApplicationFromConfig wires the production dependencies for an already loaded configuration
func NewApplicationFromConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(DependencyConfig{Forecast: cfg.Forecast})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   depContainer,
		ports:  depContainer.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		APIKey: a.config.Forecast.APIKey,
		Defaults: forecast.Target{
			Latitude:  a.config.Forecast.Latitude,
			Longitude: a.config.Forecast.Longitude,
			Days:      a.config.Forecast.Days,
			Language:  a.config.Forecast.Language,
		},
		Transport: a.ports.Transport,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		ForecastAPIChecker: infrastructure.NewForecastAPIHealthChecker(a.config.Forecast.BaseURL, a.config.Forecast.APIKey),
		TargetChecker: infrastructure.NewTargetHealthChecker(
			a.config.Forecast.Latitude,
			a.config.Forecast.Longitude,
			a.config.Forecast.Days,
			a.config.Forecast.Language,
		),
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		ForecastUseCase: a.forecastUseCase,
		HealthChecker:   systemHealthChecker,
		StatsProvider:   a.ports.Metrics,
		MetricsHandler:  a.deps.MetricsHandler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.httpAdapter = httpAdapter
	a.router = httpAdapter.GetRouter()

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.httpAdapter.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpAdapter.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.deps.Cleanup()

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetForecastUseCase returns the forecast use case
func (a *Application) GetForecastUseCase() *forecast.UseCase {
	return a.forecastUseCase
}
