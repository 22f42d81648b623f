// Command mock-visualcrossing serves synthetic Timeline API responses for local runs of the client
package main

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type timelineResponse struct {
	Address           string      `json:"address"`
	Description       string      `json:"description"`
	CurrentConditions conditions  `json:"currentConditions"`
	Days              []dayValues `json:"days"`
}

type conditions struct {
	DatetimeEpoch int64   `json:"datetimeEpoch"`
	Temp          float64 `json:"temp"`
	FeelsLike     float64 `json:"feelslike"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"windspeed"`
	WindDir       float64 `json:"winddir"`
	Pressure      float64 `json:"pressure"`
	Conditions    string  `json:"conditions"`
	Icon          string  `json:"icon"`
}

type dayValues struct {
	conditions
	TempMax float64      `json:"tempmax"`
	TempMin float64      `json:"tempmin"`
	Hours   []conditions `json:"hours"`
}

// errorKeys lets callers trigger each provider failure by API key
var errorKeys = map[string]int{
	"invalid":     http.StatusUnauthorized,
	"quota":       http.StatusTooManyRequests,
	"servererror": http.StatusInternalServerError,
	"maintenance": http.StatusServiceUnavailable,
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := newRouter(time.Now)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Mock Visual Crossing server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func newRouter(now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/:location/today/:horizon", func(c *gin.Context) {
		key := c.Query("key")
		if key == "" {
			c.String(http.StatusUnauthorized, "No API key or session found")
			return
		}
		if status, ok := errorKeys[key]; ok {
			c.String(status, http.StatusText(status))
			return
		}

		lat, lon, err := parseLocation(c.Param("location"))
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		days, err := parseHorizon(c.Param("horizon"))
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		c.JSON(http.StatusOK, buildTimeline(lat, lon, days, now().UTC()))
	})

	return r
}

func parseLocation(location string) (float64, float64, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid location: %s", location)
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %s", parts[0])
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %s", parts[1])
	}
	return lat, lon, nil
}

// parseHorizon reads the N of "nextNdays"
func parseHorizon(horizon string) (int, error) {
	if !strings.HasPrefix(horizon, "next") || !strings.HasSuffix(horizon, "days") {
		return 0, fmt.Errorf("invalid period: %s", horizon)
	}
	days, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(horizon, "next"), "days"))
	if err != nil || days < 1 {
		return 0, fmt.Errorf("invalid period: %s", horizon)
	}
	return days, nil
}

// buildTimeline returns one entry per day starting today, each with 24 hourly entries
func buildTimeline(lat, lon float64, days int, now time.Time) timelineResponse {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	base := 10 + math.Abs(lat)/10

	response := timelineResponse{
		Address:           fmt.Sprintf("%g,%g", lat, lon),
		Description:       "Synthetic forecast.",
		CurrentConditions: sample(now, base),
		Days:              make([]dayValues, 0, days),
	}

	for d := 0; d < days; d++ {
		date := today.AddDate(0, 0, d)
		day := dayValues{
			conditions: sample(date.Add(12*time.Hour), base),
			TempMax:    base + 6,
			TempMin:    base - 4,
			Hours:      make([]conditions, 0, 24),
		}
		day.DatetimeEpoch = date.Unix()
		for h := 0; h < 24; h++ {
			day.Hours = append(day.Hours, sample(date.Add(time.Duration(h)*time.Hour), base))
		}
		response.Days = append(response.Days, day)
	}

	return response
}

func sample(at time.Time, base float64) conditions {
	// Warmest mid-afternoon
	swing := 5 * math.Sin(float64(at.Hour()-9)*math.Pi/12)
	temp := math.Round((base+swing)*10) / 10

	c := conditions{
		DatetimeEpoch: at.Unix(),
		Temp:          temp,
		FeelsLike:     temp - 1,
		Humidity:      70,
		WindSpeed:     12,
		WindDir:       240,
		Pressure:      1013,
		Conditions:    "Partially cloudy",
		Icon:          "partly-cloudy-day",
	}
	if at.Hour() < 6 || at.Hour() >= 20 {
		c.Icon = "partly-cloudy-night"
	}
	return c
}
