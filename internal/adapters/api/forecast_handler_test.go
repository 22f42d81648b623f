package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"visualcrossing.app/internal/core/forecast"
	"visualcrossing.app/internal/mocks"
	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

var handlerNow = time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

// Allow logger calls without strict expectations - handle variadic field parameters
func newPermissiveLogger(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	for n := 0; n <= 8; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return mockLogger
}

func handlerPayload() json.RawMessage {
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC).Unix()
	return json.RawMessage(fmt.Sprintf(`{
		"address": "Copenhagen",
		"currentConditions": {"datetimeEpoch": %d, "temp": 15.2, "conditions": "Clear"},
		"days": [{
			"datetimeEpoch": %d, "tempmax": 18, "tempmin": 10,
			"hours": [
				{"datetimeEpoch": %d, "temp": 14.0},
				{"datetimeEpoch": %d, "temp": 16.5}
			]
		}]
	}`, handlerNow.Unix(), day, handlerNow.Add(-time.Hour).Unix(), handlerNow.Add(30*time.Minute).Unix()))
}

func asyncResult(res ports.RawResult) <-chan ports.RawResult {
	ch := make(chan ports.RawResult, 1)
	ch <- res
	close(ch)
	return ch
}

func setupForecastTestRouter(t *testing.T) (*gin.Engine, *mocks.ForecastTransport) {
	gin.SetMode(gin.TestMode)

	mockTransport := mocks.NewForecastTransport(t)

	// Create real use case with mocked dependencies
	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		APIKey:    "test-api-key",
		Defaults:  forecast.Target{Latitude: 55.6761, Longitude: 12.5683, Days: 14, Language: "en"},
		Transport: mockTransport,
		Logger:    newPermissiveLogger(t),
		Clock:     ports.ClockFunc(func() time.Time { return handlerNow }),
	})
	require.NoError(t, err)

	server := &HTTPServerAdapter{
		forecastUseCase: forecastUseCase,
	}

	router := gin.New()
	router.GET("/api/forecast", server.getForecast)

	return router, mockTransport
}

func TestForecastHandler_GetForecast_Success(t *testing.T) {
	router, mockTransport := setupForecastTestRouter(t)

	mockTransport.EXPECT().
		FetchDataAsync(mock.Anything, ports.FetchParams{
			APIKey:    "test-api-key",
			Latitude:  55.6761,
			Longitude: 12.5683,
			Days:      14,
			Language:  "en",
		}).
		Return(asyncResult(ports.RawResult{Payload: handlerPayload()})).Once()

	req := httptest.NewRequest("GET", "/api/forecast", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Current.Temperature)
	assert.Equal(t, 15.2, *response.Current.Temperature)
	assert.Equal(t, "Copenhagen", *response.Current.LocationName)
	require.NotNil(t, response.Current.Time)
	assert.True(t, handlerNow.Equal(*response.Current.Time))

	require.Len(t, response.Daily, 1)
	assert.Equal(t, 18.0, *response.Daily[0].Temperature)
	assert.Equal(t, 10.0, *response.Daily[0].TempLow)

	require.Len(t, response.Hourly, 1)
	assert.Equal(t, 16.5, *response.Hourly[0].Temperature)
}

func TestForecastHandler_GetForecast_MissingValuesAreNull(t *testing.T) {
	router, mockTransport := setupForecastTestRouter(t)

	mockTransport.EXPECT().
		FetchDataAsync(mock.Anything, mock.Anything).
		Return(asyncResult(ports.RawResult{Payload: json.RawMessage(`{"currentConditions": {}, "days": []}`)})).Once()

	req := httptest.NewRequest("GET", "/api/forecast", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	var current map[string]interface{}
	require.NoError(t, json.Unmarshal(body["current"], &current))

	assert.Contains(t, current, "temperature")
	assert.Nil(t, current["temperature"])
	assert.Nil(t, current["time"])
	assert.JSONEq(t, `[]`, string(body["daily"]))
	assert.JSONEq(t, `[]`, string(body["hourly"]))
}

func TestForecastHandler_GetForecast_QueryOverrides(t *testing.T) {
	router, mockTransport := setupForecastTestRouter(t)

	mockTransport.EXPECT().
		FetchDataAsync(mock.Anything, ports.FetchParams{
			APIKey:    "test-api-key",
			Latitude:  40.7128,
			Longitude: -74.006,
			Days:      14,
			Language:  "en",
		}).
		Return(asyncResult(ports.RawResult{Payload: handlerPayload()})).Once()

	req := httptest.NewRequest("GET", "/api/forecast?lat=40.7128&lon=-74.006&days=20&lang=xx", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestForecastHandler_GetForecast_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"latitude out of range", "lat=91"},
		{"longitude out of range", "lon=-200"},
		{"zero days", "days=0"},
		{"non-numeric latitude", "lat=north"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupForecastTestRouter(t)

			req := httptest.NewRequest("GET", "/api/forecast?"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "VALIDATION_ERROR", response.Type)
		})
	}
}

func TestForecastHandler_GetForecast_ProviderErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"unauthorized", errors.NewUnauthorizedError("bad key"), http.StatusBadGateway},
		{"quota", errors.NewTooManyRequestsError("quota"), http.StatusTooManyRequests},
		{"access", errors.NewAccessError("down", 503, nil), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockTransport := setupForecastTestRouter(t)
			mockTransport.EXPECT().
				FetchDataAsync(mock.Anything, mock.Anything).
				Return(asyncResult(ports.RawResult{Err: tt.err})).Once()

			req := httptest.NewRequest("GET", "/api/forecast", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestForecastHandler_GetForecast_NoData(t *testing.T) {
	router, mockTransport := setupForecastTestRouter(t)
	mockTransport.EXPECT().
		FetchDataAsync(mock.Anything, mock.Anything).
		Return(asyncResult(ports.RawResult{Payload: nil})).Once()

	req := httptest.NewRequest("GET", "/api/forecast", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestForecastHandler_GetForecast_RequestCancelled(t *testing.T) {
	router, mockTransport := setupForecastTestRouter(t)

	never := make(chan ports.RawResult)
	mockTransport.EXPECT().
		FetchDataAsync(mock.Anything, mock.Anything).
		Return((<-chan ports.RawResult)(never)).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest("GET", "/api/forecast", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}
