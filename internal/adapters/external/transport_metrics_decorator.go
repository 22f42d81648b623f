package external

import (
	"context"
	"encoding/json"
	"time"

	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

// Outcome labels recorded for each fetch
const (
	OutcomeSuccess             = "success"
	OutcomeBadRequest          = "bad_request"
	OutcomeUnauthorized        = "unauthorized"
	OutcomeTooManyRequests     = "too_many_requests"
	OutcomeInternalServerError = "internal_server_error"
	OutcomeAccessError         = "access_error"
	OutcomeUnknown             = "unknown"
)

// TransportMetricsDecorator records one observation per forecast fetch
type TransportMetricsDecorator struct {
	transport ports.ForecastTransport
	metrics   ports.TransportMetrics
}

// NewTransportMetricsDecorator creates a new metrics decorator for forecast transports
func NewTransportMetricsDecorator(transport ports.ForecastTransport, metrics ports.TransportMetrics) ports.ForecastTransport {
	return &TransportMetricsDecorator{
		transport: transport,
		metrics:   metrics,
	}
}

func (d *TransportMetricsDecorator) FetchData(ctx context.Context, params ports.FetchParams) (json.RawMessage, error) {
	startTime := time.Now()
	payload, err := d.transport.FetchData(ctx, params)
	d.metrics.RecordFetch(modeBlocking, OutcomeOf(err), time.Since(startTime))
	return payload, err
}

func (d *TransportMetricsDecorator) FetchDataAsync(ctx context.Context, params ports.FetchParams) <-chan ports.RawResult {
	startTime := time.Now()
	pending := d.transport.FetchDataAsync(ctx, params)
	results := make(chan ports.RawResult, 1)

	go func() {
		defer close(results)

		res, ok := <-pending
		if !ok {
			d.metrics.RecordFetch(modeAsync, OutcomeUnknown, time.Since(startTime))
			return
		}

		d.metrics.RecordFetch(modeAsync, OutcomeOf(res.Err), time.Since(startTime))
		results <- res
	}()

	return results
}

// OutcomeOf returns the metrics label for a fetch error
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	switch errors.KindOf(err) {
	case errors.BadRequestError:
		return OutcomeBadRequest
	case errors.UnauthorizedError:
		return OutcomeUnauthorized
	case errors.TooManyRequestsError:
		return OutcomeTooManyRequests
	case errors.InternalServerErrorError:
		return OutcomeInternalServerError
	case errors.AccessError:
		return OutcomeAccessError
	default:
		return OutcomeUnknown
	}
}
