package external

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StatusCode is the provider's "cod" field. The current weather endpoint sends it
// as a JSON number, the forecast endpoints as a string; both decode to an int.
type StatusCode int

func (s *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		if text == "" {
			*s = 0
			return nil
		}
		code, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("invalid status code %q: %w", text, err)
		}
		*s = StatusCode(code)
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("invalid status code %s: %w", data, err)
	}
	*s = StatusCode(int(number))
	return nil
}

// Envelope carries the fields every provider response shares.
type Envelope struct {
	Cod     StatusCode `json:"cod"`
	Message any        `json:"message,omitempty"`
}

// ErrorMessage returns the provider's message and whether it was a string.
// Forecast payloads reuse the field for a numeric value on success.
func (e Envelope) ErrorMessage() (string, bool) {
	text, ok := e.Message.(string)
	return text, ok
}

// WeatherCondition is one entry of the provider's "weather" array.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainReadings is the provider's "main" block.
type MainReadings struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *int     `json:"pressure"`
	Humidity  *int     `json:"humidity"`
}

// Wind is the provider's "wind" block.
type Wind struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
}

// CurrentWeatherResponse is the payload of the "weather" endpoint.
type CurrentWeatherResponse struct {
	Envelope
	Name    string             `json:"name"`
	Main    *MainReadings      `json:"main"`
	Wind    *Wind              `json:"wind"`
	Weather []WeatherCondition `json:"weather"`
}

// ForecastItem is one three-hour sample of the "forecast" endpoint.
type ForecastItem struct {
	Dt      int64              `json:"dt"`
	DtTxt   *string            `json:"dt_txt"`
	Main    *MainReadings      `json:"main"`
	Weather []WeatherCondition `json:"weather"`
}

// ForecastResponse is the payload of the "forecast" endpoint.
type ForecastResponse struct {
	Envelope
	Cnt  int            `json:"cnt"`
	List []ForecastItem `json:"list"`
}

// DailyTemperature is the "temp" block of a daily forecast entry.
type DailyTemperature struct {
	Day *float64 `json:"day"`
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// DailyForecastItem is one day of the "forecast/daily" endpoint.
type DailyForecastItem struct {
	Dt      *int64             `json:"dt"`
	Temp    *DailyTemperature  `json:"temp"`
	Weather []WeatherCondition `json:"weather"`
}

// DailyForecastResponse is the payload of the "forecast/daily" endpoint.
type DailyForecastResponse struct {
	Envelope
	Cnt  int                 `json:"cnt"`
	List []DailyForecastItem `json:"list"`
}
