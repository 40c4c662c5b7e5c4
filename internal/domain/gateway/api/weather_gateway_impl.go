package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"weather-api/configs"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
)

const apiKeyParam = "appid"

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a gateway whose client injects cfg.APIKey into every request.
func NewWeatherGateway(cfg *configs.WeatherConfig) WeatherGateway {
	httpClient := http.NewHttpClient(cfg.BaseURL, http.ClientOptions{
		FollowRedirect:      true,
		DefaultQueryParams:  map[string]string{apiKeyParam: cfg.APIKey},
		DefaultHeaders:      map[string]string{"Accept": "application/json"},
		MaxIdleConns:        cfg.HTTP.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.HTTP.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
		ConnectionTimeout:   cfg.HTTP.ConnectionTimeout,
		ReadTimeout:         cfg.HTTP.ReadTimeout,
		Logger:              http.NewZapLogger("openweather", apiKeyParam),
	})

	return &weatherGatewayImpl{
		httpClient: httpClient,
	}
}

func (w *weatherGatewayImpl) Fetch(ctx context.Context, endpoint string, params map[string]string, target any) error {
	_, _, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(endpoint).
		WithQueryParams(params).
		WithSuccessResp(target).
		WithErrorResp(target).
		Execute()

	var statusErr *http.StatusError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &statusErr):
		// the error body was decoded into target; the caller judges the status
		return nil
	case errors.Is(err, http.ErrUnmarshal):
		return fmt.Errorf("%w: %s (status %d): %w", ErrUpstreamDecode, endpoint, status, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, endpoint, err)
	}
}

// GetCurrentWeather gets the current conditions for a locator
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, locator string, units string) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	if err := w.Fetch(ctx, EndpointCurrentWeather, locationParams(locator, units), response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetForecast gets the three-hourly forecast for a locator
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, locator string, units string) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	if err := w.Fetch(ctx, EndpointForecast, locationParams(locator, units), response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetDailyForecast gets count days of forecast for a locator
func (w *weatherGatewayImpl) GetDailyForecast(ctx context.Context, locator string, units string, count int) (*external.DailyForecastResponse, error) {
	params := locationParams(locator, units)
	params["cnt"] = strconv.Itoa(count)

	response := &external.DailyForecastResponse{}
	if err := w.Fetch(ctx, EndpointDailyForecast, params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func locationParams(locator string, units string) map[string]string {
	return map[string]string{
		"q":     locator,
		"units": units,
	}
}
