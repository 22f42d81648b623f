package ports

import (
	"context"
	"encoding/json"
)

// FetchParams holds the request parameters for one forecast round-trip
type FetchParams struct {
	APIKey    string
	Latitude  float64
	Longitude float64
	Days      int
	Language  string
}

// RawResult is delivered by the non-blocking fetch once the round-trip ends
type RawResult struct {
	Payload json.RawMessage
	Err     error
}

// ForecastTransport defines the contract for fetching a raw forecast payload.
// Both methods perform exactly one request and share the same error semantics.
type ForecastTransport interface {
	FetchData(ctx context.Context, params FetchParams) (json.RawMessage, error)
	FetchDataAsync(ctx context.Context, params FetchParams) <-chan RawResult
}
