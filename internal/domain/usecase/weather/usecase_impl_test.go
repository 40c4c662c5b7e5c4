package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"weather-api/configs"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

// fakeGateway decodes canned JSON bodies the way the real gateway would.
type fakeGateway struct {
	body      string
	err       error
	endpoint  string
	params    map[string]string
	callCount int
}

func (f *fakeGateway) Fetch(_ context.Context, endpoint string, params map[string]string, target any) error {
	f.callCount++
	f.endpoint = endpoint
	f.params = params
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.body), target)
}

func (f *fakeGateway) GetCurrentWeather(ctx context.Context, locator string, units string) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	if err := f.Fetch(ctx, api.EndpointCurrentWeather, map[string]string{"q": locator, "units": units}, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (f *fakeGateway) GetForecast(ctx context.Context, locator string, units string) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	if err := f.Fetch(ctx, api.EndpointForecast, map[string]string{"q": locator, "units": units}, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (f *fakeGateway) GetDailyForecast(ctx context.Context, locator string, units string, count int) (*external.DailyForecastResponse, error) {
	response := &external.DailyForecastResponse{}
	params := map[string]string{"q": locator, "units": units, "cnt": fmt.Sprint(count)}
	if err := f.Fetch(ctx, api.EndpointDailyForecast, params, response); err != nil {
		return nil, err
	}
	return response, nil
}

func testConfig() *configs.WeatherConfig {
	return &configs.WeatherConfig{
		Units:          "metric",
		DefaultCity:    "London",
		DefaultCountry: "GB",
		HourlyLimit:    8,
		DailyCount:     7,
	}
}

var london = model.WeatherQuery{City: "London", Country: "GB"}

func TestQueryDefaults(t *testing.T) {
	uc := NewWeatherUseCase(testConfig(), &fakeGateway{})

	str := func(s string) *string { return &s }
	cases := []struct {
		name          string
		city, country *string
		want          model.WeatherQuery
	}{
		{"both absent", nil, nil, model.WeatherQuery{City: "London", Country: "GB"}},
		{"country absent", str("Paris"), nil, model.WeatherQuery{City: "Paris", Country: "GB"}},
		{"city absent", nil, str("FR"), model.WeatherQuery{City: "London", Country: "FR"}},
		{"both given", str("Lyon"), str("FR"), model.WeatherQuery{City: "Lyon", Country: "FR"}},
		{"empty city kept", str(""), nil, model.WeatherQuery{City: "", Country: "GB"}},
		{"both empty kept", str(""), str(""), model.WeatherQuery{City: "", Country: ""}},
	}
	for _, tc := range cases {
		if got := uc.Query(tc.city, tc.country); got != tc.want {
			t.Errorf("%s: Query() = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestCurrentWeather(t *testing.T) {
	gateway := &fakeGateway{body: `{"cod":200,"main":{"temp":15.2,"humidity":70},"wind":{"speed":3.1},"weather":[{"description":"clear sky"},{"description":"mist"}]}`}
	uc := NewWeatherUseCase(testConfig(), gateway)

	view, err := uc.CurrentWeather(context.Background(), london)
	if err != nil {
		t.Fatalf("CurrentWeather: %v", err)
	}

	want := model.CurrentWeatherView{City: "London", Country: "GB", Temperature: 15.2, Humidity: 70, WindSpeed: 3.1, Description: "clear sky"}
	if *view != want {
		t.Fatalf("view = %+v, want %+v", *view, want)
	}
	if gateway.endpoint != "weather" || gateway.params["q"] != "London,GB" || gateway.params["units"] != "metric" {
		t.Fatalf("endpoint=%q params=%v", gateway.endpoint, gateway.params)
	}
}

func TestRejections(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		call    func(UseCase) error
		message string
	}{
		{
			name:    "current weather with message",
			body:    `{"cod":"404","message":"city not found"}`,
			call:    func(uc UseCase) error { _, err := uc.CurrentWeather(context.Background(), london); return err },
			message: "city not found",
		},
		{
			name:    "current weather without message",
			body:    `{"cod":500}`,
			call:    func(uc UseCase) error { _, err := uc.CurrentWeather(context.Background(), london); return err },
			message: DefaultRejectionMessage,
		},
		{
			name:    "current weather with empty message",
			body:    `{"cod":"404","message":""}`,
			call:    func(uc UseCase) error { _, err := uc.CurrentWeather(context.Background(), london); return err },
			message: "",
		},
		{
			name:    "hourly forecast",
			body:    `{"cod":"401","message":"Invalid API key"}`,
			call:    func(uc UseCase) error { _, err := uc.HourlyForecast(context.Background(), london); return err },
			message: "Invalid API key",
		},
		{
			name:    "daily forecast without status",
			body:    `{"list":[]}`,
			call:    func(uc UseCase) error { _, err := uc.DailyForecast(context.Background(), london); return err },
			message: DefaultRejectionMessage,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call(NewWeatherUseCase(testConfig(), &fakeGateway{body: tc.body}))
			rejection, ok := IsRejection(err)
			if !ok {
				t.Fatalf("expected RejectionError, got %v", err)
			}
			if rejection.Message != tc.message {
				t.Fatalf("message = %q, want %q", rejection.Message, tc.message)
			}
		})
	}
}

func TestMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
		call func(UseCase) error
	}{
		{"no main", `{"cod":200,"wind":{"speed":1},"weather":[{"description":"x"}]}`,
			func(uc UseCase) error { _, err := uc.CurrentWeather(context.Background(), london); return err }},
		{"no humidity", `{"cod":200,"main":{"temp":1},"wind":{"speed":1},"weather":[{"description":"x"}]}`,
			func(uc UseCase) error { _, err := uc.CurrentWeather(context.Background(), london); return err }},
		{"no wind", `{"cod":200,"main":{"temp":1,"humidity":2},"weather":[{"description":"x"}]}`,
			func(uc UseCase) error { _, err := uc.CurrentWeather(context.Background(), london); return err }},
		{"empty weather", `{"cod":200,"main":{"temp":1,"humidity":2},"wind":{"speed":1},"weather":[]}`,
			func(uc UseCase) error { _, err := uc.CurrentWeather(context.Background(), london); return err }},
		{"hourly without list", `{"cod":"200"}`,
			func(uc UseCase) error { _, err := uc.HourlyForecast(context.Background(), london); return err }},
		{"hourly entry without dt_txt", `{"cod":"200","list":[{"main":{"temp":1},"weather":[{"description":"x"}]}]}`,
			func(uc UseCase) error { _, err := uc.HourlyForecast(context.Background(), london); return err }},
		{"daily entry without temp", `{"cod":"200","list":[{"dt":1,"weather":[{"description":"x"}]}]}`,
			func(uc UseCase) error { _, err := uc.DailyForecast(context.Background(), london); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call(NewWeatherUseCase(testConfig(), &fakeGateway{body: tc.body}))
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestGatewayErrorsPropagate(t *testing.T) {
	uc := NewWeatherUseCase(testConfig(), &fakeGateway{err: api.ErrUpstreamUnavailable})

	_, err := uc.CurrentWeather(context.Background(), london)
	if !errors.Is(err, api.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if _, ok := IsRejection(err); ok {
		t.Fatal("transport failure must not be reported as a rejection")
	}
}

func hourlyBody(n int) string {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"dt":      1700000000 + i*10800,
			"dt_txt":  fmt.Sprintf("2024-01-01 %02d:00:00", i),
			"main":    map[string]any{"temp": float64(i) + 0.5},
			"weather": []map[string]any{{"description": fmt.Sprintf("sample %d", i)}},
		}
	}
	body, _ := json.Marshal(map[string]any{"cod": "200", "message": 0, "cnt": n, "list": items})
	return string(body)
}

func TestHourlyForecastTruncatesInOrder(t *testing.T) {
	uc := NewWeatherUseCase(testConfig(), &fakeGateway{body: hourlyBody(20)})

	entries, err := uc.HourlyForecast(context.Background(), london)
	if err != nil {
		t.Fatalf("HourlyForecast: %v", err)
	}
	if len(entries) != 8 {
		t.Fatalf("len = %d, want 8", len(entries))
	}
	for i, entry := range entries {
		want := model.HourlyForecastEntry{
			Time:        fmt.Sprintf("2024-01-01 %02d:00:00", i),
			Temperature: float64(i) + 0.5,
			Description: fmt.Sprintf("sample %d", i),
		}
		if entry != want {
			t.Errorf("entries[%d] = %+v, want %+v", i, entry, want)
		}
	}
}

func TestHourlyForecastShortList(t *testing.T) {
	uc := NewWeatherUseCase(testConfig(), &fakeGateway{body: hourlyBody(3)})

	entries, err := uc.HourlyForecast(context.Background(), london)
	if err != nil || len(entries) != 3 {
		t.Fatalf("entries=%d err=%v", len(entries), err)
	}
}

func TestDailyForecast(t *testing.T) {
	body := `{"cod":"200","cnt":2,"list":[
		{"dt":1700000000,"temp":{"day":10,"min":5.5,"max":12.25},"weather":[{"description":"light rain"}]},
		{"dt":1700086400,"temp":{"day":11,"min":6,"max":13},"weather":[{"description":"overcast clouds"}]}
	]}`
	gateway := &fakeGateway{body: body}
	uc := NewWeatherUseCase(testConfig(), gateway)

	entries, err := uc.DailyForecast(context.Background(), london)
	if err != nil {
		t.Fatalf("DailyForecast: %v", err)
	}
	if gateway.endpoint != "forecast/daily" || gateway.params["cnt"] != "7" {
		t.Fatalf("endpoint=%q params=%v", gateway.endpoint, gateway.params)
	}

	want := []model.DailyForecastEntry{
		{Date: 1700000000, TemperatureMax: 12.25, TemperatureMin: 5.5, Description: "light rain"},
		{Date: 1700086400, TemperatureMax: 13, TemperatureMin: 6, Description: "overcast clouds"},
	}
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}
