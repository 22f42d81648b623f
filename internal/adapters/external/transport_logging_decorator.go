package external

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

const (
	modeBlocking = "blocking"
	modeAsync    = "async"
)

// TransportLoggingDecorator decorates a forecast transport with structured logging.
// The API key is never written to the log.
type TransportLoggingDecorator struct {
	transport ports.ForecastTransport
	logger    ports.Logger
}

// NewTransportLoggingDecorator creates a new logging decorator for forecast transports
func NewTransportLoggingDecorator(transport ports.ForecastTransport, logger ports.Logger) ports.ForecastTransport {
	return &TransportLoggingDecorator{
		transport: transport,
		logger:    logger,
	}
}

// FetchData wraps the blocking fetch with request and outcome logs
func (d *TransportLoggingDecorator) FetchData(ctx context.Context, params ports.FetchParams) (json.RawMessage, error) {
	requestID := d.logStart(modeBlocking, params)
	startTime := time.Now()

	payload, err := d.transport.FetchData(ctx, params)
	d.logOutcome(requestID, modeBlocking, time.Since(startTime), payload, err)

	return payload, err
}

// FetchDataAsync wraps the non-blocking fetch; the outcome is logged when the result arrives
func (d *TransportLoggingDecorator) FetchDataAsync(ctx context.Context, params ports.FetchParams) <-chan ports.RawResult {
	requestID := d.logStart(modeAsync, params)
	startTime := time.Now()

	pending := d.transport.FetchDataAsync(ctx, params)
	results := make(chan ports.RawResult, 1)

	go func() {
		defer close(results)

		res, ok := <-pending
		if !ok {
			d.logger.Error("Forecast request ended without a result",
				ports.F("request_id", requestID),
				ports.F("mode", modeAsync),
				ports.F("event", "error"))
			return
		}

		d.logOutcome(requestID, modeAsync, time.Since(startTime), res.Payload, res.Err)
		results <- res
	}()

	return results
}

func (d *TransportLoggingDecorator) logStart(mode string, params ports.FetchParams) string {
	requestID := uuid.NewString()

	d.logger.Info("Forecast request started",
		ports.F("request_id", requestID),
		ports.F("mode", mode),
		ports.F("latitude", params.Latitude),
		ports.F("longitude", params.Longitude),
		ports.F("days", params.Days),
		ports.F("language", params.Language),
		ports.F("event", "request"))

	return requestID
}

func (d *TransportLoggingDecorator) logOutcome(requestID, mode string, duration time.Duration, payload json.RawMessage, err error) {
	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("request_id", requestID),
			ports.F("mode", mode),
			ports.F("event", "error"),
			ports.F("error_type", errors.KindOf(err).String()),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return
	}

	d.logger.Info("Forecast request completed",
		ports.F("request_id", requestID),
		ports.F("mode", mode),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("payload_bytes", len(payload)))
}
