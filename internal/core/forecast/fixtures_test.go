package forecast

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"visualcrossing.app/internal/mocks"
)

var fixedNow = time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

// newPermissiveLogger allows any log call with up to eight fields
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

// scenarioPayload has one day and two hours: one before fixedNow and one after
func scenarioPayload() json.RawMessage {
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC).Unix()
	past := fixedNow.Add(-90 * time.Minute).Truncate(time.Hour).Unix()
	future := fixedNow.Add(30 * time.Minute).Unix()

	return json.RawMessage(fmt.Sprintf(`{
		"address": "Copenhagen",
		"description": "Cooling down with a chance of rain.",
		"currentConditions": {
			"datetimeEpoch": %d,
			"conditions": "Partially cloudy",
			"cloudcover": 45.3,
			"icon": "partly-cloudy-day",
			"temp": 15.2,
			"dew": 8.1,
			"feelslike": 14.6,
			"precip": 0.0,
			"precipprob": 10,
			"humidity": 62.4,
			"solarradiation": 210.5,
			"visibility": 24.1,
			"pressure": 1013.2,
			"uvindex": 2,
			"windspeed": 14.4,
			"windgust": 25.2,
			"winddir": 230
		},
		"days": [
			{
				"datetimeEpoch": %d,
				"tempmax": 18,
				"tempmin": 10,
				"feelslike": 13.9,
				"conditions": "Rain, Partially cloudy",
				"icon": "rain",
				"cloudcover": 60,
				"dew": 7.5,
				"humidity": 70,
				"precipprob": 55,
				"precip": 2.3,
				"pressure": 1012,
				"winddir": 220,
				"windspeed": 20.5,
				"windgust": 38.9,
				"uvindex": 3,
				"hours": [
					{"datetimeEpoch": %d, "temp": 14.0, "conditions": "Overcast"},
					{"datetimeEpoch": %d, "temp": 16.1, "feelslike": 15.8, "conditions": "Rain", "icon": "rain"}
				]
			}
		]
	}`, fixedNow.Add(-10*time.Minute).Unix(), day, past, future))
}
