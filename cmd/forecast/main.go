// Command forecast fetches one forecast for the configured location and prints it
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"visualcrossing.app/internal/app"
	"visualcrossing.app/internal/config"
	"visualcrossing.app/internal/core/forecast"
	"visualcrossing.app/pkg/errors"
	"visualcrossing.app/pkg/logger"
)

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04:05"
)

func main() {
	days := flag.Int("days", 0, "forecast horizon in days (default from FORECAST_DAYS)")
	lang := flag.String("lang", "", "response language (default from FORECAST_LANGUAGE)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.NewWithLevel(logger.ParseLevel(cfg.Log.Level)).
		WithFields(map[string]interface{}{"command": "forecast"}).
		SetDefault()

	application, err := app.NewApplicationFromConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	request := forecast.ForecastRequest{Language: *lang}
	if *days != 0 {
		request.Days = days
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Forecast.HTTPTimeout())
	defer cancel()

	os.Exit(run(ctx, os.Stdout, application.GetForecastUseCase(), request))
}

// run fetches once in blocking mode and returns the process exit code
func run(ctx context.Context, out io.Writer, uc *forecast.UseCase, request forecast.ForecastRequest) int {
	client, err := uc.NewClient(uc.Resolve(request))
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintln(out, time.Now().Format(dateFormat))

	data, err := client.FetchData(ctx)
	switch {
	case errors.IsUnauthorized(err):
		fmt.Fprintln(out, "unauthorized: check VISUALCROSSING_API_KEY:", err)
		return 2
	case err != nil:
		fmt.Fprintln(out, err)
		return 1
	case data == nil:
		fmt.Fprintln(out, "no forecast data returned")
		return 0
	}

	printForecast(out, data)
	return 0
}

func printForecast(out io.Writer, data *forecast.ForecastData) {
	fmt.Fprintln(out, "***** CURRENT CONDITIONS *****")
	fmt.Fprintln(out, "DATE & TIME:", formatTime(data.Time, dateTimeFormat))
	fmt.Fprintln(out, "TEMPERATURE:", formatFloat(data.Temperature), "WIND GUST SPEED:", formatFloat(data.WindGustSpeed))
	fmt.Fprintln(out, "LOCATION:", formatString(data.LocationName))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "***** DAILY DATA *****")
	for _, day := range data.Daily {
		fmt.Fprintln(out,
			formatTime(day.Date, dateFormat),
			formatFloat(day.Temperature),
			formatFloat(day.TempLow),
			formatString(day.Icon),
			formatString(day.Condition))
	}

	fmt.Fprintln(out, "***** HOURLY DATA *****")
	for _, hour := range data.Hourly {
		fmt.Fprintln(out,
			formatTime(hour.Time, dateTimeFormat),
			formatFloat(hour.Temperature),
			formatFloat(hour.ApparentTemperature),
			formatString(hour.Icon),
			formatString(hour.Condition))
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatString(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(layout)
}
