package controller

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.CurrentWeather)
	controller.api.GET("/forecast/hourly", controller.HourlyForecast)
	controller.api.GET("/forecast/daily", controller.DailyForecast)
}

// CurrentWeather godoc
// @Summary Current weather
// @Description Current conditions for a city, in metric units
// @Tags weather
// @Produce json
// @Param city query string false "City name" default(London)
// @Param country query string false "Country code" default(GB)
// @Success 200 {object} model.CurrentWeatherView
// @Failure 400 {object} model.ErrorResponse "Provider rejected the request"
// @Failure 500 {object} map[string]string "Provider unreachable or malformed response"
// @Router /weather [get]
func (controller *WeatherController) CurrentWeather(c echo.Context) error {
	query := controller.query(c)

	view, err := controller.useCase.CurrentWeather(c.Request().Context(), query)
	if err != nil {
		return rejectionOrError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// HourlyForecast godoc
// @Summary Hourly forecast
// @Description The next eight three-hour samples (about 24 hours)
// @Tags weather
// @Produce json
// @Param city query string false "City name" default(London)
// @Param country query string false "Country code" default(GB)
// @Success 200 {array} model.HourlyForecastEntry
// @Failure 400 {object} model.ErrorResponse "Provider rejected the request"
// @Failure 500 {object} map[string]string "Provider unreachable or malformed response"
// @Router /forecast/hourly [get]
func (controller *WeatherController) HourlyForecast(c echo.Context) error {
	query := controller.query(c)

	entries, err := controller.useCase.HourlyForecast(c.Request().Context(), query)
	if err != nil {
		return rejectionOrError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// DailyForecast godoc
// @Summary Daily forecast
// @Description Up to seven days of forecast
// @Tags weather
// @Produce json
// @Param city query string false "City name" default(London)
// @Param country query string false "Country code" default(GB)
// @Success 200 {array} model.DailyForecastEntry
// @Failure 400 {object} model.ErrorResponse "Provider rejected the request"
// @Failure 500 {object} map[string]string "Provider unreachable or malformed response"
// @Router /forecast/daily [get]
func (controller *WeatherController) DailyForecast(c echo.Context) error {
	query := controller.query(c)

	entries, err := controller.useCase.DailyForecast(c.Request().Context(), query)
	if err != nil {
		return rejectionOrError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (controller *WeatherController) query(c echo.Context) model.WeatherQuery {
	params := c.QueryParams()
	return controller.useCase.Query(optionalParam(params, "city"), optionalParam(params, "country"))
}

// optionalParam returns nil when name is absent from the query string, so that
// "?city=" is told apart from no city at all.
func optionalParam(params url.Values, name string) *string {
	if !params.Has(name) {
		return nil
	}
	value := params.Get(name)
	return &value
}

// rejectionOrError answers 400 for provider rejections and hands anything else
// to echo's error handler, which replies with an opaque 500.
func rejectionOrError(c echo.Context, err error) error {
	if rejection, ok := weather.IsRejection(err); ok {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: rejection.Message})
	}
	return err
}
