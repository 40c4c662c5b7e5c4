package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-api/configs"
	"weather-api/docs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/weather"
)

// New builds the echo instance with middleware and every route registered.
func New(cfg *configs.AppConfig, weatherUseCase weather.UseCase, healthUseCase health.UseCase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	e.Use(echomw.Recover())
	middleware.SetupCORS(e)

	api := e.Group(cfg.Server.ContextPath)

	controller.NewRootController(api).InitRootRoutes()
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(api, weatherUseCase).InitWeatherRoutes()

	docs.SwaggerInfo.BasePath = "/"
	if cfg.Server.ContextPath != "" {
		docs.SwaggerInfo.BasePath = cfg.Server.ContextPath
	}
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
