package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID - first, so every subsequent log line can correlate
//  2. RequestLogger - logs all requests with the request id
//  3. Recover - catches panics and returns 500
//  4. CORS - the storefront web client runs on a different origin
//
// Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
	e.Use(echomw.CORS())
}
