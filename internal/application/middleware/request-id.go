package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupRequestID keeps an inbound X-Request-Id or assigns a UUID, and echoes it on the response.
func SetupRequestID(e *echo.Echo) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
}
