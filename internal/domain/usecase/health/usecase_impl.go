package health

import (
	"net/url"

	"weather-api/configs"
	"weather-api/internal/domain/model"
)

type healthUseCase struct {
	config *configs.WeatherConfig
}

func NewHealthUseCase(config *configs.WeatherConfig) UseCase {
	return &healthUseCase{config: config}
}

// CheckHealth reports whether the upstream provider is configured. It makes no outbound call.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	upstream := useCase.upstreamHealth()

	return model.HealthResponse{
		Status:   upstream.Status,
		Upstream: upstream,
	}
}

func (useCase *healthUseCase) upstreamHealth() model.ComponentHealthStatus {
	details := map[string]string{}

	baseURL, err := url.Parse(useCase.config.BaseURL)
	if err != nil || baseURL.Host == "" {
		details["message"] = "invalid base url"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	details["host"] = baseURL.Host

	if useCase.config.APIKey == "" {
		details["message"] = "api key not configured"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
