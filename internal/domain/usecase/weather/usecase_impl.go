package weather

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"weather-api/configs"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

const successStatus = 200

type weatherUseCase struct {
	config     *configs.WeatherConfig
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(config *configs.WeatherConfig, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		config:     config,
		apiGateway: apiGateway,
	}
}

func (uc *weatherUseCase) Query(city *string, country *string) model.WeatherQuery {
	query := model.WeatherQuery{City: uc.config.DefaultCity, Country: uc.config.DefaultCountry}
	if city != nil {
		query.City = *city
	}
	if country != nil {
		query.Country = *country
	}
	return query
}

// CurrentWeather returns the current conditions for the query location
func (uc *weatherUseCase) CurrentWeather(ctx context.Context, query model.WeatherQuery) (*model.CurrentWeatherView, error) {
	response, err := uc.apiGateway.GetCurrentWeather(ctx, query.Locator(), uc.config.Units)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	if err := uc.checkStatus(response.Envelope, api.EndpointCurrentWeather, query); err != nil {
		return nil, err
	}

	if response.Main == nil || response.Main.Temp == nil || response.Main.Humidity == nil {
		return nil, fmt.Errorf("%w: main.temp/main.humidity", ErrMissingField)
	}
	if response.Wind == nil || response.Wind.Speed == nil {
		return nil, fmt.Errorf("%w: wind.speed", ErrMissingField)
	}
	if len(response.Weather) == 0 {
		return nil, fmt.Errorf("%w: weather[0]", ErrMissingField)
	}

	return &model.CurrentWeatherView{
		City:        query.City,
		Country:     query.Country,
		Temperature: *response.Main.Temp,
		Humidity:    *response.Main.Humidity,
		WindSpeed:   *response.Wind.Speed,
		Description: response.Weather[0].Description,
	}, nil
}

// HourlyForecast returns the first HourlyLimit three-hour samples in provider order
func (uc *weatherUseCase) HourlyForecast(ctx context.Context, query model.WeatherQuery) ([]model.HourlyForecastEntry, error) {
	response, err := uc.apiGateway.GetForecast(ctx, query.Locator(), uc.config.Units)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	if err := uc.checkStatus(response.Envelope, api.EndpointForecast, query); err != nil {
		return nil, err
	}

	if response.List == nil {
		return nil, fmt.Errorf("%w: list", ErrMissingField)
	}

	items := response.List
	if len(items) > uc.config.HourlyLimit {
		items = items[:uc.config.HourlyLimit]
	}

	entries := make([]model.HourlyForecastEntry, 0, len(items))
	for i, item := range items {
		if item.DtTxt == nil || item.Main == nil || item.Main.Temp == nil || len(item.Weather) == 0 {
			return nil, fmt.Errorf("%w: list[%d]", ErrMissingField, i)
		}
		entries = append(entries, model.HourlyForecastEntry{
			Time:        *item.DtTxt,
			Temperature: *item.Main.Temp,
			Description: item.Weather[0].Description,
		})
	}

	return entries, nil
}

// DailyForecast requests DailyCount days and returns as many as the provider sent
func (uc *weatherUseCase) DailyForecast(ctx context.Context, query model.WeatherQuery) ([]model.DailyForecastEntry, error) {
	response, err := uc.apiGateway.GetDailyForecast(ctx, query.Locator(), uc.config.Units, uc.config.DailyCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily forecast: %w", err)
	}

	if err := uc.checkStatus(response.Envelope, api.EndpointDailyForecast, query); err != nil {
		return nil, err
	}

	if response.List == nil {
		return nil, fmt.Errorf("%w: list", ErrMissingField)
	}

	entries := make([]model.DailyForecastEntry, 0, len(response.List))
	for i, item := range response.List {
		if item.Dt == nil || item.Temp == nil || item.Temp.Max == nil || item.Temp.Min == nil || len(item.Weather) == 0 {
			return nil, fmt.Errorf("%w: list[%d]", ErrMissingField, i)
		}
		entries = append(entries, model.DailyForecastEntry{
			Date:           *item.Dt,
			TemperatureMax: *item.Temp.Max,
			TemperatureMin: *item.Temp.Min,
			Description:    item.Weather[0].Description,
		})
	}

	return entries, nil
}

// checkStatus turns a non-200 provider status into a RejectionError
func (uc *weatherUseCase) checkStatus(envelope external.Envelope, endpoint string, query model.WeatherQuery) error {
	if envelope.Cod == successStatus {
		return nil
	}

	message, ok := envelope.ErrorMessage()
	if !ok {
		message = DefaultRejectionMessage
	}

	log.Warn(msg.GetMessage("weather.rejected", endpoint, query.Locator(), message),
		zap.String("endpoint", endpoint),
		zap.String("locator", query.Locator()),
		zap.Int("status", int(envelope.Cod)))

	return &RejectionError{Status: int(envelope.Cod), Message: message}
}
