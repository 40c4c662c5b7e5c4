package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"weather-api/configs"
	"weather-api/internal/application/router"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

// @title Weather API
// @version 1.0
// @description Simplified current weather and forecasts proxied from OpenWeatherMap.
// @BasePath /
func main() {
	if err := msg.Init(msg.FilePath()); err != nil {
		log.Fatal("Fail to load messages", zap.Error(err))
	}
	if err := resource.Init(resource.FilePath()); err != nil {
		log.Fatal("Fail to load properties", zap.Error(err))
	}

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-failed", err), zap.Error(err))
	}
	log.Configure(cfg.ApplicationName, cfg.LogLevel)
	defer log.Sync()

	log.Info(msg.GetMessage("app.start", cfg.ApplicationName))

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(&cfg.Weather)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(&cfg.Weather, weatherGateway)
	healthUseCase := health.NewHealthUseCase(&cfg.Weather)

	// Init Routes
	e := router.New(cfg, weatherUseCase, healthUseCase)

	go func() {
		log.Info(msg.GetMessage("app.started", cfg.ApplicationName, cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info(msg.GetMessage("app.stopping", cfg.ApplicationName))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Shutdown error", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", cfg.ApplicationName))
}
