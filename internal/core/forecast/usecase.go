package forecast

import (
	"context"

	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

// Target is a fully resolved forecast request
type Target struct {
	Latitude  float64
	Longitude float64
	Days      int
	Language  string
}

// ForecastRequest is a partial target; unset fields take the configured defaults
type ForecastRequest struct {
	Latitude  *float64
	Longitude *float64
	Days      *int
	Language  string
}

// UseCase serves forecasts for arbitrary targets over one shared transport
type UseCase struct {
	apiKey    string
	defaults  Target
	transport ports.ForecastTransport
	logger    ports.Logger
	clock     ports.Clock
}

// UseCaseDependencies holds the credentials, default target and ports for a UseCase
type UseCaseDependencies struct {
	APIKey    string
	Defaults  Target
	Transport ports.ForecastTransport
	Logger    ports.Logger
	Clock     ports.Clock
}

// NewUseCase creates a forecast use case; Transport and Logger are required
func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Transport == nil {
		return nil, errors.NewValidationError("forecast transport is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		apiKey:    deps.APIKey,
		defaults:  deps.Defaults,
		transport: deps.Transport,
		logger:    deps.Logger,
		clock:     deps.Clock,
	}, nil
}

// Resolve fills unset request fields from the defaults
func (uc *UseCase) Resolve(request ForecastRequest) Target {
	target := uc.defaults
	if request.Latitude != nil {
		target.Latitude = *request.Latitude
	}
	if request.Longitude != nil {
		target.Longitude = *request.Longitude
	}
	if request.Days != nil {
		target.Days = *request.Days
	}
	if request.Language != "" {
		target.Language = request.Language
	}
	return target
}

// NewClient builds a client for target over the shared transport
func (uc *UseCase) NewClient(target Target) (*Client, error) {
	return NewClient(ClientParams{
		APIKey:    uc.apiKey,
		Latitude:  target.Latitude,
		Longitude: target.Longitude,
		Days:      target.Days,
		Language:  target.Language,
		Transport: uc.transport,
		Logger:    uc.logger,
		Clock:     uc.clock,
	})
}

// GetForecast starts a non-blocking fetch for the resolved request.
// The channel carries exactly one result.
func (uc *UseCase) GetForecast(ctx context.Context, request ForecastRequest) <-chan FetchResult {
	target := uc.Resolve(request)

	client, err := uc.NewClient(target)
	if err != nil {
		results := make(chan FetchResult, 1)
		results <- FetchResult{Err: err}
		close(results)
		return results
	}

	uc.logger.Info("Serving forecast",
		ports.F("latitude", target.Latitude),
		ports.F("longitude", target.Longitude),
		ports.F("days", client.Days()),
		ports.F("language", client.Language()))

	return client.FetchDataAsync(ctx)
}
