package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth)
}

// CheckHealth godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	healthResponse := controller.useCase.CheckHealth()

	status := http.StatusOK
	if healthResponse.Status != model.StatusUp {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, healthResponse)
}
