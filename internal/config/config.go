package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"visualcrossing.app/pkg/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Forecast ForecastConfig `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080" validate:"min=1,max=65535"`
}

type ForecastConfig struct {
	APIKey             string  `envconfig:"VISUALCROSSING_API_KEY" validate:"required"`
	BaseURL            string  `envconfig:"VISUALCROSSING_BASE_URL" default:"https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline/" validate:"required,url"`
	Latitude           float64 `envconfig:"FORECAST_LATITUDE" validate:"min=-90,max=90"`
	Longitude          float64 `envconfig:"FORECAST_LONGITUDE" validate:"min=-180,max=180"`
	Days               int     `envconfig:"FORECAST_DAYS" default:"14" validate:"min=1"`
	Language           string  `envconfig:"FORECAST_LANGUAGE" default:"en"`
	HTTPTimeoutSeconds int     `envconfig:"HTTP_TIMEOUT_SECONDS" default:"30" validate:"min=1,max=300"`
	EnableLogging      bool    `envconfig:"FORECAST_ENABLE_LOGGING" default:"true"`
	LogFilePath        string  `envconfig:"FORECAST_LOG_FILE_PATH"`
}

// HTTPTimeout returns the per-request timeout for sessions built by the application
func (f ForecastConfig) HTTPTimeout() time.Duration {
	return time.Duration(f.HTTPTimeoutSeconds) * time.Second
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
}

var validate = validator.New()

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return translateValidationError(err)
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	return nil
}

func (f *ForecastConfig) Validate() error {
	if !strings.HasPrefix(f.BaseURL, "http://") && !strings.HasPrefix(f.BaseURL, "https://") {
		return errors.NewConfigurationError("VISUALCROSSING_BASE_URL must start with http:// or https://", nil)
	}
	return nil
}

// envNames maps struct fields to the variables users actually set
var envNames = map[string]string{
	"Port":               "SERVER_PORT",
	"APIKey":             "VISUALCROSSING_API_KEY",
	"BaseURL":            "VISUALCROSSING_BASE_URL",
	"Latitude":           "FORECAST_LATITUDE",
	"Longitude":          "FORECAST_LONGITUDE",
	"Days":               "FORECAST_DAYS",
	"HTTPTimeoutSeconds": "HTTP_TIMEOUT_SECONDS",
	"Level":              "LOG_LEVEL",
}

func translateValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewConfigurationError("invalid configuration", err)
	}

	fieldErr := validationErrors[0]
	name, ok := envNames[fieldErr.StructField()]
	if !ok {
		name = fieldErr.Namespace()
	}

	var message string
	switch fieldErr.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", name)
	case "min":
		message = fmt.Sprintf("%s must be at least %s", name, fieldErr.Param())
	case "max":
		message = fmt.Sprintf("%s must be at most %s", name, fieldErr.Param())
	case "oneof":
		message = fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "url":
		message = fmt.Sprintf("%s must be a valid URL", name)
	default:
		message = fmt.Sprintf("%s failed %s validation", name, fieldErr.Tag())
	}

	return errors.NewConfigurationError(message, err)
}
