package forecast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedPayload is returned when a successful response does not have the documented shape.
// It marks a broken provider contract and is never converted into one of the transport error kinds.
var ErrMalformedPayload = errors.New("malformed forecast payload")

type timelinePayload struct {
	Address           *string            `json:"address"`
	Description       *string            `json:"description"`
	CurrentConditions *conditionsPayload `json:"currentConditions"`
	Days              []dayPayload       `json:"days"`
}

// conditionsPayload carries the fields shared by current conditions and hour entries
type conditionsPayload struct {
	DatetimeEpoch  *int64   `json:"datetimeEpoch"`
	Conditions     *string  `json:"conditions"`
	CloudCover     *float64 `json:"cloudcover"`
	Icon           *string  `json:"icon"`
	Temp           *float64 `json:"temp"`
	Dew            *float64 `json:"dew"`
	FeelsLike      *float64 `json:"feelslike"`
	Precip         *float64 `json:"precip"`
	PrecipProb     *float64 `json:"precipprob"`
	Humidity       *float64 `json:"humidity"`
	SolarRadiation *float64 `json:"solarradiation"`
	Visibility     *float64 `json:"visibility"`
	Pressure       *float64 `json:"pressure"`
	UVIndex        *float64 `json:"uvindex"`
	WindSpeed      *float64 `json:"windspeed"`
	WindGust       *float64 `json:"windgust"`
	WindDir        *float64 `json:"winddir"`
}

type dayPayload struct {
	conditionsPayload
	TempMax *float64            `json:"tempmax"`
	TempMin *float64            `json:"tempmin"`
	Hours   []conditionsPayload `json:"hours"`
}

// MapForecast converts a raw timeline payload into a ForecastData.
// An empty or null payload yields (nil, nil). Hour entries at or before now are dropped.
func MapForecast(raw json.RawMessage, now time.Time) (*ForecastData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var payload timelinePayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if payload.CurrentConditions == nil {
		return nil, fmt.Errorf("%w: missing currentConditions", ErrMalformedPayload)
	}
	if payload.Days == nil {
		return nil, fmt.Errorf("%w: missing days", ErrMalformedPayload)
	}

	current := mapCurrentConditions(payload.CurrentConditions)
	current.LocationName = payload.Address
	current.Description = payload.Description

	daily := make([]ForecastDailyData, 0, len(payload.Days))
	hourly := make([]ForecastHourlyData, 0)
	for i := range payload.Days {
		day := &payload.Days[i]
		daily = append(daily, mapDay(day))

		for j := range day.Hours {
			hour := &day.Hours[j]
			at := epochToUTC(hour.DatetimeEpoch)
			if !at.After(now) {
				continue
			}
			hourly = append(hourly, mapHour(hour, at))
		}
	}

	return NewForecastData(current, daily, hourly), nil
}

func mapCurrentConditions(c *conditionsPayload) CurrentConditions {
	return CurrentConditions{
		Time:                     epochToUTC(c.DatetimeEpoch),
		ApparentTemperature:      c.FeelsLike,
		Condition:                c.Conditions,
		CloudCover:               c.CloudCover,
		DewPoint:                 c.Dew,
		Humidity:                 c.Humidity,
		Icon:                     c.Icon,
		Precipitation:            c.Precip,
		PrecipitationProbability: c.PrecipProb,
		Pressure:                 c.Pressure,
		SolarRadiation:           c.SolarRadiation,
		Temperature:              c.Temp,
		Visibility:               c.Visibility,
		UVIndex:                  c.UVIndex,
		WindBearing:              c.WindDir,
		WindGustSpeed:            c.WindGust,
		WindSpeed:                c.WindSpeed,
	}
}

func mapDay(d *dayPayload) ForecastDailyData {
	return ForecastDailyData{
		Date:                     epochToUTC(d.DatetimeEpoch),
		Temperature:              d.TempMax,
		TempLow:                  d.TempMin,
		ApparentTemperature:      d.FeelsLike,
		Condition:                d.Conditions,
		Icon:                     d.Icon,
		CloudCover:               d.CloudCover,
		DewPoint:                 d.Dew,
		Humidity:                 d.Humidity,
		PrecipitationProbability: d.PrecipProb,
		Precipitation:            d.Precip,
		Pressure:                 d.Pressure,
		WindBearing:              d.WindDir,
		WindSpeed:                d.WindSpeed,
		WindGustSpeed:            d.WindGust,
		UVIndex:                  d.UVIndex,
	}
}

func mapHour(h *conditionsPayload, at time.Time) ForecastHourlyData {
	return ForecastHourlyData{
		Time:                     at,
		Temperature:              h.Temp,
		ApparentTemperature:      h.FeelsLike,
		Condition:                h.Conditions,
		Icon:                     h.Icon,
		CloudCover:               h.CloudCover,
		DewPoint:                 h.Dew,
		Humidity:                 h.Humidity,
		PrecipitationProbability: h.PrecipProb,
		Precipitation:            h.Precip,
		Pressure:                 h.Pressure,
		WindBearing:              h.WindDir,
		WindSpeed:                h.WindSpeed,
		WindGustSpeed:            h.WindGust,
		UVIndex:                  h.UVIndex,
	}
}

// epochToUTC returns the zero time when the provider omitted the timestamp
func epochToUTC(epoch *int64) time.Time {
	if epoch == nil {
		return time.Time{}
	}
	return time.Unix(*epoch, 0).UTC()
}
