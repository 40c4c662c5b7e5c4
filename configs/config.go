package configs

import (
	"errors"
	"time"

	"weather-api/pkg/resource"
)

const (
	DefaultApplicationName = "weather-api"
	DefaultPort            = "5000"
	DefaultBaseURL         = "https://api.openweathermap.org/data/2.5"
	DefaultUnits           = "metric"
	DefaultCity            = "London"
	DefaultCountry         = "GB"
	DefaultHourlyLimit     = 8
	DefaultDailyCount      = 7
	DefaultShutdownTimeout = 5 * time.Second
)

var ErrMissingAPIKey = errors.New("app.weather.api-key (OPENWEATHER_API_KEY) is required")

// AppConfig is built once at startup and handed to the components that need it.
type AppConfig struct {
	ApplicationName string
	LogLevel        string
	Server          ServerConfig
	Weather         WeatherConfig
}

type ServerConfig struct {
	Port            string
	ContextPath     string
	ShutdownTimeout time.Duration
}

// WeatherConfig holds the upstream provider settings and the request defaults.
type WeatherConfig struct {
	BaseURL        string
	APIKey         string
	Units          string
	DefaultCity    string
	DefaultCountry string
	HourlyLimit    int
	DailyCount     int
	HTTP           HTTPConfig
}

type HTTPConfig struct {
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	IdleConnTimeout     time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// Load reads the loaded properties into an AppConfig. resource.Init must run first.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ApplicationName: resource.GetStringOrDefault("app.name", DefaultApplicationName),
		LogLevel:        resource.GetStringOrDefault("app.log.level", "info"),
		Server: ServerConfig{
			Port:            resource.GetStringOrDefault("app.server.port", DefaultPort),
			ContextPath:     resource.GetString("app.server.context-path"),
			ShutdownTimeout: resource.GetDurationOrDefault("app.server.shutdown-timeout", DefaultShutdownTimeout),
		},
		Weather: WeatherConfig{
			BaseURL:        resource.GetStringOrDefault("app.weather.base-url", DefaultBaseURL),
			APIKey:         resource.GetString("app.weather.api-key"),
			Units:          resource.GetStringOrDefault("app.weather.units", DefaultUnits),
			DefaultCity:    resource.GetStringOrDefault("app.weather.default-city", DefaultCity),
			DefaultCountry: resource.GetStringOrDefault("app.weather.default-country", DefaultCountry),
			HourlyLimit:    resource.GetIntOrDefault("app.weather.hourly-limit", DefaultHourlyLimit),
			DailyCount:     resource.GetIntOrDefault("app.weather.daily-count", DefaultDailyCount),
			HTTP: HTTPConfig{
				ConnectionTimeout:   resource.GetDuration("app.weather.http.connection-timeout"),
				ReadTimeout:         resource.GetDuration("app.weather.http.read-timeout"),
				IdleConnTimeout:     resource.GetDuration("app.weather.http.idle-conn-timeout"),
				MaxIdleConns:        resource.GetInt("app.weather.http.max-idle-conns"),
				MaxIdleConnsPerHost: resource.GetInt("app.weather.http.max-idle-conns-per-host"),
			},
		},
	}

	if cfg.Weather.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}
