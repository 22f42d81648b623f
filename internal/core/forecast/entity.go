package forecast

import "time"

// CurrentConditions holds the observation reported under currentConditions.
// A nil pointer means the provider did not report the value.
type CurrentConditions struct {
	Time                     time.Time
	ApparentTemperature      *float64
	Condition                *string
	CloudCover               *float64
	DewPoint                 *float64
	Humidity                 *float64
	Icon                     *string
	Precipitation            *float64
	PrecipitationProbability *float64
	Pressure                 *float64
	SolarRadiation           *float64
	Temperature              *float64
	Visibility               *float64
	UVIndex                  *float64
	WindBearing              *float64
	WindGustSpeed            *float64
	WindSpeed                *float64
	LocationName             *string
	Description              *string
}

// ForecastDailyData is the forecast for one calendar day.
// Temperature is the day's maximum and TempLow its minimum.
type ForecastDailyData struct {
	Date                     time.Time
	Temperature              *float64
	TempLow                  *float64
	ApparentTemperature      *float64
	Condition                *string
	Icon                     *string
	CloudCover               *float64
	DewPoint                 *float64
	Humidity                 *float64
	PrecipitationProbability *float64
	Precipitation            *float64
	Pressure                 *float64
	WindBearing              *float64
	WindSpeed                *float64
	WindGustSpeed            *float64
	UVIndex                  *float64
}

// ForecastHourlyData is the forecast for one upcoming hour
type ForecastHourlyData struct {
	Time                     time.Time
	Temperature              *float64
	ApparentTemperature      *float64
	Condition                *string
	Icon                     *string
	CloudCover               *float64
	DewPoint                 *float64
	Humidity                 *float64
	PrecipitationProbability *float64
	Precipitation            *float64
	Pressure                 *float64
	WindBearing              *float64
	WindSpeed                *float64
	WindGustSpeed            *float64
	UVIndex                  *float64
}

// ForecastData is the complete result of one fetch
type ForecastData struct {
	CurrentConditions
	Daily  []ForecastDailyData
	Hourly []ForecastHourlyData
}

// NewForecastData assembles a forecast once all of its parts are available
func NewForecastData(current CurrentConditions, daily []ForecastDailyData, hourly []ForecastHourlyData) *ForecastData {
	if daily == nil {
		daily = []ForecastDailyData{}
	}
	if hourly == nil {
		hourly = []ForecastHourlyData{}
	}
	return &ForecastData{
		CurrentConditions: current,
		Daily:             daily,
		Hourly:            hourly,
	}
}
