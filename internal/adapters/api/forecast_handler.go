package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"visualcrossing.app/internal/core/forecast"
	"visualcrossing.app/pkg/errors"
)

// ForecastQuery is the query string of GET /api/forecast
type ForecastQuery struct {
	Latitude  *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"lon" binding:"omitempty,min=-180,max=180"`
	Days      *int     `form:"days" binding:"omitempty,min=1"`
	Language  string   `form:"lang"`
}

// ForecastResponse represents the HTTP response for forecast data.
// Values the provider did not report are null.
type ForecastResponse struct {
	Current CurrentResponse  `json:"current"`
	Daily   []DailyResponse  `json:"daily"`
	Hourly  []HourlyResponse `json:"hourly"`
}

type CurrentResponse struct {
	Time                     *time.Time `json:"time"`
	LocationName             *string    `json:"locationName"`
	Description              *string    `json:"description"`
	Condition                *string    `json:"condition"`
	Icon                     *string    `json:"icon"`
	Temperature              *float64   `json:"temperature"`
	ApparentTemperature      *float64   `json:"apparentTemperature"`
	CloudCover               *float64   `json:"cloudCover"`
	DewPoint                 *float64   `json:"dewPoint"`
	Humidity                 *float64   `json:"humidity"`
	Precipitation            *float64   `json:"precipitation"`
	PrecipitationProbability *float64   `json:"precipitationProbability"`
	Pressure                 *float64   `json:"pressure"`
	SolarRadiation           *float64   `json:"solarRadiation"`
	Visibility               *float64   `json:"visibility"`
	UVIndex                  *float64   `json:"uvIndex"`
	WindBearing              *float64   `json:"windBearing"`
	WindGustSpeed            *float64   `json:"windGustSpeed"`
	WindSpeed                *float64   `json:"windSpeed"`
}

type DailyResponse struct {
	Date                     *time.Time `json:"date"`
	Temperature              *float64   `json:"temperature"`
	TempLow                  *float64   `json:"tempLow"`
	ApparentTemperature      *float64   `json:"apparentTemperature"`
	Condition                *string    `json:"condition"`
	Icon                     *string    `json:"icon"`
	CloudCover               *float64   `json:"cloudCover"`
	DewPoint                 *float64   `json:"dewPoint"`
	Humidity                 *float64   `json:"humidity"`
	PrecipitationProbability *float64   `json:"precipitationProbability"`
	Precipitation            *float64   `json:"precipitation"`
	Pressure                 *float64   `json:"pressure"`
	WindBearing              *float64   `json:"windBearing"`
	WindSpeed                *float64   `json:"windSpeed"`
	WindGustSpeed            *float64   `json:"windGustSpeed"`
	UVIndex                  *float64   `json:"uvIndex"`
}

type HourlyResponse struct {
	Time                     *time.Time `json:"time"`
	Temperature              *float64   `json:"temperature"`
	ApparentTemperature      *float64   `json:"apparentTemperature"`
	Condition                *string    `json:"condition"`
	Icon                     *string    `json:"icon"`
	CloudCover               *float64   `json:"cloudCover"`
	DewPoint                 *float64   `json:"dewPoint"`
	Humidity                 *float64   `json:"humidity"`
	PrecipitationProbability *float64   `json:"precipitationProbability"`
	Precipitation            *float64   `json:"precipitation"`
	Pressure                 *float64   `json:"pressure"`
	WindBearing              *float64   `json:"windBearing"`
	WindSpeed                *float64   `json:"windSpeed"`
	WindGustSpeed            *float64   `json:"windGustSpeed"`
	UVIndex                  *float64   `json:"uvIndex"`
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	var query ForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("invalid forecast query: "+err.Error()))
		return
	}

	request := forecast.ForecastRequest{
		Latitude:  query.Latitude,
		Longitude: query.Longitude,
		Days:      query.Days,
		Language:  query.Language,
	}

	ctx := c.Request.Context()
	select {
	case res, ok := <-s.forecastUseCase.GetForecast(ctx, request):
		if !ok {
			s.handleError(c, errors.NewAccessError("forecast ended without a result", 0, nil))
			return
		}
		if res.Err != nil {
			s.handleError(c, res.Err)
			return
		}
		if res.Forecast == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, toForecastResponse(res.Forecast))
	case <-ctx.Done():
		slog.Debug("Forecast request abandoned", "error", ctx.Err())
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Request ended before the forecast arrived"})
	}
}

func toForecastResponse(data *forecast.ForecastData) ForecastResponse {
	current := data.CurrentConditions
	response := ForecastResponse{
		Current: CurrentResponse{
			Time:                     timeOrNil(current.Time),
			LocationName:             current.LocationName,
			Description:              current.Description,
			Condition:                current.Condition,
			Icon:                     current.Icon,
			Temperature:              current.Temperature,
			ApparentTemperature:      current.ApparentTemperature,
			CloudCover:               current.CloudCover,
			DewPoint:                 current.DewPoint,
			Humidity:                 current.Humidity,
			Precipitation:            current.Precipitation,
			PrecipitationProbability: current.PrecipitationProbability,
			Pressure:                 current.Pressure,
			SolarRadiation:           current.SolarRadiation,
			Visibility:               current.Visibility,
			UVIndex:                  current.UVIndex,
			WindBearing:              current.WindBearing,
			WindGustSpeed:            current.WindGustSpeed,
			WindSpeed:                current.WindSpeed,
		},
		Daily:  make([]DailyResponse, 0, len(data.Daily)),
		Hourly: make([]HourlyResponse, 0, len(data.Hourly)),
	}

	for _, day := range data.Daily {
		response.Daily = append(response.Daily, DailyResponse{
			Date:                     timeOrNil(day.Date),
			Temperature:              day.Temperature,
			TempLow:                  day.TempLow,
			ApparentTemperature:      day.ApparentTemperature,
			Condition:                day.Condition,
			Icon:                     day.Icon,
			CloudCover:               day.CloudCover,
			DewPoint:                 day.DewPoint,
			Humidity:                 day.Humidity,
			PrecipitationProbability: day.PrecipitationProbability,
			Precipitation:            day.Precipitation,
			Pressure:                 day.Pressure,
			WindBearing:              day.WindBearing,
			WindSpeed:                day.WindSpeed,
			WindGustSpeed:            day.WindGustSpeed,
			UVIndex:                  day.UVIndex,
		})
	}

	for _, hour := range data.Hourly {
		response.Hourly = append(response.Hourly, HourlyResponse{
			Time:                     timeOrNil(hour.Time),
			Temperature:              hour.Temperature,
			ApparentTemperature:      hour.ApparentTemperature,
			Condition:                hour.Condition,
			Icon:                     hour.Icon,
			CloudCover:               hour.CloudCover,
			DewPoint:                 hour.DewPoint,
			Humidity:                 hour.Humidity,
			PrecipitationProbability: hour.PrecipitationProbability,
			Precipitation:            hour.Precipitation,
			Pressure:                 hour.Pressure,
			WindBearing:              hour.WindBearing,
			WindSpeed:                hour.WindSpeed,
			WindGustSpeed:            hour.WindGustSpeed,
			UVIndex:                  hour.UVIndex,
		})
	}

	return response
}

// timeOrNil maps the zero time used for a missing epoch to null
func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
