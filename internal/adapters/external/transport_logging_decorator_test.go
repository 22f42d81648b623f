package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

// Simple test using concrete implementations instead of mocks
func TestTransportLoggingDecorator_BasicFunctionality(t *testing.T) {
	testTransport := &testForecastTransport{payload: json.RawMessage(validPayload)}
	testLogger := &testLogger{}

	decorator := NewTransportLoggingDecorator(testTransport, testLogger)

	payload, err := decorator.FetchData(context.Background(), testParams())

	assert.NoError(t, err)
	assert.Equal(t, json.RawMessage(validPayload), payload)

	entries := testLogger.snapshot()
	require.Len(t, entries, 2)

	requestLog := entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Forecast request started", requestLog.message)
	assert.Equal(t, "blocking", requestLog.fields["mode"])
	assert.Equal(t, 55.6761, requestLog.fields["latitude"])
	assert.Equal(t, 14, requestLog.fields["days"])
	assert.Equal(t, "da", requestLog.fields["language"])
	assert.Equal(t, "request", requestLog.fields["event"])
	assert.NotContains(t, requestLog.fields, "key")
	assert.NotContains(t, requestLog.fields, "api_key")

	requestID, ok := requestLog.fields["request_id"].(string)
	require.True(t, ok)
	_, parseErr := uuid.Parse(requestID)
	assert.NoError(t, parseErr)

	responseLog := entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Forecast request completed", responseLog.message)
	assert.Equal(t, requestID, responseLog.fields["request_id"])
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, len(validPayload), responseLog.fields["payload_bytes"])
	assert.Contains(t, responseLog.fields, "duration_ms")
}

func TestTransportLoggingDecorator_ErrorHandling(t *testing.T) {
	testTransport := &testForecastTransport{err: errors.NewUnauthorizedError("invalid key")}
	testLogger := &testLogger{}

	decorator := NewTransportLoggingDecorator(testTransport, testLogger)

	payload, err := decorator.FetchData(context.Background(), testParams())

	assert.Nil(t, payload)
	assert.True(t, errors.IsUnauthorized(err))

	entries := testLogger.snapshot()
	require.Len(t, entries, 2)

	errorLog := entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Forecast request failed", errorLog.message)
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "UNAUTHORIZED", errorLog.fields["error_type"])
	assert.Equal(t, err.Error(), errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestTransportLoggingDecorator_FailuresNeverLogAPIKey(t *testing.T) {
	const secret = "SECRETKEY123"

	closed := newTestServer(t, http.StatusOK, validPayload)
	refusedURL := closed.URL
	closed.Close()

	live := newTestServer(t, http.StatusOK, validPayload)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		baseURL string
		ctx     context.Context
		async   bool
	}{
		{"ConnectionRefused", refusedURL, context.Background(), false},
		{"ConnectionRefusedAsync", refusedURL, context.Background(), true},
		{"ContextCancelled", live.URL, cancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLogger := &testLogger{}
			transport := NewVisualCrossingTransport(VisualCrossingTransportParams{BaseURL: tt.baseURL, Logger: testLogger})
			decorator := NewTransportLoggingDecorator(transport, testLogger)

			params := testParams()
			params.APIKey = secret

			var err error
			if tt.async {
				res := <-decorator.FetchDataAsync(tt.ctx, params)
				err = res.Err
			} else {
				_, err = decorator.FetchData(tt.ctx, params)
			}

			require.Error(t, err)
			assert.NotContains(t, err.Error(), secret)

			entries := testLogger.snapshot()
			require.NotEmpty(t, entries)
			assert.Equal(t, "Forecast request failed", entries[len(entries)-1].message)
			for _, entry := range entries {
				assert.NotContains(t, entry.message, secret)
				for key, value := range entry.fields {
					assert.NotContains(t, fmt.Sprint(value), secret, "field %q", key)
				}
			}
		})
	}
}

func TestTransportLoggingDecorator_DurationTracking(t *testing.T) {
	testTransport := &testForecastTransport{payload: json.RawMessage(validPayload), delay: 10 * time.Millisecond}
	testLogger := &testLogger{}

	decorator := NewTransportLoggingDecorator(testTransport, testLogger)

	_, err := decorator.FetchData(context.Background(), testParams())
	require.NoError(t, err)

	entries := testLogger.snapshot()
	require.Len(t, entries, 2)
	duration, ok := entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestTransportLoggingDecorator_Async(t *testing.T) {
	testTransport := &testForecastTransport{payload: json.RawMessage(validPayload)}
	testLogger := &testLogger{}

	decorator := NewTransportLoggingDecorator(testTransport, testLogger)

	res, ok := <-decorator.FetchDataAsync(context.Background(), testParams())
	require.True(t, ok)
	require.NoError(t, res.Err)

	entries := testLogger.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "async", entries[0].fields["mode"])
	assert.Equal(t, "Forecast request completed", entries[1].message)
	assert.Equal(t, entries[0].fields["request_id"], entries[1].fields["request_id"])
}

func TestTransportLoggingDecorator_AsyncClosedWithoutResult(t *testing.T) {
	testTransport := &testForecastTransport{closeWithoutResult: true}
	testLogger := &testLogger{}

	decorator := NewTransportLoggingDecorator(testTransport, testLogger)

	_, ok := <-decorator.FetchDataAsync(context.Background(), testParams())
	assert.False(t, ok)

	entries := testLogger.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "ERROR", entries[1].level)
}

// Test helper structs
type testForecastTransport struct {
	payload            json.RawMessage
	err                error
	delay              time.Duration
	closeWithoutResult bool
}

func (p *testForecastTransport) FetchData(ctx context.Context, params ports.FetchParams) (json.RawMessage, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.payload, nil
}

func (p *testForecastTransport) FetchDataAsync(ctx context.Context, params ports.FetchParams) <-chan ports.RawResult {
	results := make(chan ports.RawResult, 1)
	if p.closeWithoutResult {
		close(results)
		return results
	}
	go func() {
		defer close(results)
		payload, err := p.FetchData(ctx, params)
		results <- ports.RawResult{Payload: payload, Err: err}
	}()
	return results
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func (l *testLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

// Benchmark test
func BenchmarkTransportLoggingDecorator(b *testing.B) {
	testTransport := &testForecastTransport{payload: json.RawMessage(validPayload)}
	decorator := NewTransportLoggingDecorator(testTransport, &testLogger{})

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = decorator.FetchData(context.Background(), testParams())
		}
	})
}
