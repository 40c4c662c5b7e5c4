package model

// WeatherQuery identifies the location a request is about.
type WeatherQuery struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Locator returns the "city,country" string the provider expects.
func (q WeatherQuery) Locator() string {
	return q.City + "," + q.Country
}

// CurrentWeatherView is the simplified current conditions payload.
type CurrentWeatherView struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
}

// HourlyForecastEntry is one three-hour sample.
type HourlyForecastEntry struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
}

// DailyForecastEntry is one forecast day.
type DailyForecastEntry struct {
	Date           int64   `json:"date"`
	TemperatureMax float64 `json:"temperature_max"`
	TemperatureMin float64 `json:"temperature_min"`
	Description    string  `json:"description"`
}

// ErrorResponse is returned when the provider rejects a request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a plain informational message.
type MessageResponse struct {
	Message string `json:"message"`
}
