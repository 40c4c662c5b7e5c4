package api

import (
	"context"
	"errors"

	"weather-api/internal/domain/model/external"
)

// Provider endpoints, relative to the configured base URL.
const (
	EndpointCurrentWeather = "weather"
	EndpointForecast       = "forecast"
	EndpointDailyForecast  = "forecast/daily"
)

var (
	// ErrUpstreamUnavailable means the provider could not be reached.
	ErrUpstreamUnavailable = errors.New("weather provider unavailable")
	// ErrUpstreamDecode means the provider answered with a body that is not valid JSON.
	ErrUpstreamDecode = errors.New("weather provider returned an undecodable body")
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// Fetch calls endpoint with params plus the API key and decodes the JSON body
	// into target whatever status the provider answered with.
	Fetch(ctx context.Context, endpoint string, params map[string]string, target any) error

	// GetCurrentWeather gets the current conditions for a "city,country" locator
	GetCurrentWeather(ctx context.Context, locator string, units string) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the three-hourly forecast for a locator
	GetForecast(ctx context.Context, locator string, units string) (*external.ForecastResponse, error)

	// GetDailyForecast gets count days of forecast for a locator
	GetDailyForecast(ctx context.Context, locator string, units string, count int) (*external.DailyForecastResponse, error)
}
