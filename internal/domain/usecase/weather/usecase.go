package weather

import (
	"context"
	"errors"

	"weather-api/internal/domain/model"
)

// DefaultRejectionMessage is used when the provider rejects a request without a message.
const DefaultRejectionMessage = "Failed to fetch weather data"

// ErrMissingField means the provider payload lacks a field the view needs.
var ErrMissingField = errors.New("weather provider payload is missing a required field")

// RejectionError is returned when the provider reports a non-success status.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// IsRejection reports whether err is a provider rejection and returns it.
func IsRejection(err error) (*RejectionError, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

type UseCase interface {
	// Query builds a WeatherQuery, substituting the configured defaults for absent (nil) values.
	// A present but empty value is kept as is.
	Query(city *string, country *string) model.WeatherQuery

	// CurrentWeather returns the current conditions for the query location
	CurrentWeather(ctx context.Context, query model.WeatherQuery) (*model.CurrentWeatherView, error)

	// HourlyForecast returns the next three-hourly samples, truncated to the configured limit
	HourlyForecast(ctx context.Context, query model.WeatherQuery) ([]model.HourlyForecastEntry, error)

	// DailyForecast returns every day the provider sent for the configured count
	DailyForecast(ctx context.Context, query model.WeatherQuery) ([]model.DailyForecastEntry, error)
}
