package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
)

const welcomeMessage = "Welcome"

type RootController struct {
	api *echo.Group
}

func NewRootController(api *echo.Group) *RootController {
	return &RootController{api: api}
}

// InitRootRoutes initializes the root route
func (controller *RootController) InitRootRoutes() {
	controller.api.GET("/", controller.Welcome)
}

// Welcome godoc
// @Summary Welcome message
// @Tags root
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router / [get]
func (controller *RootController) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{Message: welcomeMessage})
}
