package forecast

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

// MaxForecastDays is the longest horizon the provider serves in one request
const MaxForecastDays = 14

// ClientParams describes one forecast target and the collaborators used to fetch it
type ClientParams struct {
	APIKey    string
	Latitude  float64
	Longitude float64
	// Days defaults to MaxForecastDays when zero and is clamped to it when larger
	Days int
	// Language falls back to DefaultLanguage when unsupported
	Language string

	Transport ports.ForecastTransport
	Logger    ports.Logger
	// Clock defaults to the wall clock
	Clock ports.Clock
}

// FetchResult is delivered by FetchDataAsync
type FetchResult struct {
	Forecast *ForecastData
	Err      error
}

// Client fetches and maps forecasts for a single coordinate
type Client struct {
	params    ports.FetchParams
	transport ports.ForecastTransport
	logger    ports.Logger
	clock     ports.Clock

	mu          sync.Mutex
	lastPayload json.RawMessage
}

// NewClient validates the dependencies and normalizes days and language
func NewClient(params ClientParams) (*Client, error) {
	if params.Transport == nil {
		return nil, errors.NewValidationError("forecast transport is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := params.Clock
	if clock == nil {
		clock = ports.ClockFunc(time.Now)
	}

	return &Client{
		params: ports.FetchParams{
			APIKey:    params.APIKey,
			Latitude:  params.Latitude,
			Longitude: params.Longitude,
			Days:      normalizeDays(params.Days),
			Language:  NormalizeLanguage(params.Language),
		},
		transport: params.Transport,
		logger:    params.Logger,
		clock:     clock,
	}, nil
}

// normalizeDays applies the default and the upper bound; lower values are left for the provider to reject
func normalizeDays(days int) int {
	if days == 0 || days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}

// Days returns the forecast horizon sent to the provider
func (c *Client) Days() int {
	return c.params.Days
}

// Language returns the response language sent to the provider
func (c *Client) Language() string {
	return c.params.Language
}

// LastPayload returns the raw payload of the most recent fetch, nil before the first one
func (c *Client) LastPayload() json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPayload
}

// FetchData performs one blocking round-trip and returns the mapped forecast.
// A nil forecast with a nil error means the provider returned no data.
func (c *Client) FetchData(ctx context.Context) (*ForecastData, error) {
	c.logRequest("blocking")

	raw, err := c.transport.FetchData(ctx, c.params)
	if err != nil {
		return nil, err
	}
	return c.process(raw)
}

// FetchDataAsync starts one round-trip and returns immediately.
// Exactly one FetchResult is sent before the channel is closed.
func (c *Client) FetchDataAsync(ctx context.Context) <-chan FetchResult {
	c.logRequest("async")

	results := make(chan FetchResult, 1)
	pending := c.transport.FetchDataAsync(ctx, c.params)

	go func() {
		defer close(results)

		res, ok := <-pending
		if !ok {
			results <- FetchResult{Err: errors.NewAccessError("forecast transport closed without a result", 0, nil)}
			return
		}
		if res.Err != nil {
			results <- FetchResult{Err: res.Err}
			return
		}

		data, err := c.process(res.Payload)
		results <- FetchResult{Forecast: data, Err: err}
	}()

	return results
}

func (c *Client) logRequest(mode string) {
	c.logger.Debug("Fetching forecast",
		ports.F("mode", mode),
		ports.F("latitude", c.params.Latitude),
		ports.F("longitude", c.params.Longitude),
		ports.F("days", c.params.Days),
		ports.F("language", c.params.Language))
}

func (c *Client) process(raw json.RawMessage) (*ForecastData, error) {
	c.mu.Lock()
	c.lastPayload = raw
	c.mu.Unlock()

	data, err := MapForecast(raw, c.clock.Now())
	if err != nil {
		c.logger.Error("Forecast payload could not be mapped", ports.F("error", err))
		return nil, err
	}
	if data == nil {
		c.logger.Warn("Forecast provider returned no data")
		return nil, nil
	}

	c.logger.Debug("Forecast mapped",
		ports.F("daily", len(data.Daily)),
		ports.F("hourly", len(data.Hourly)))
	return data, nil
}
