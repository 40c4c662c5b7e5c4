package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupCORS allows cross-origin reads from any origin.
func SetupCORS(e *echo.Echo) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAccept, echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:       300,
	}))
}
