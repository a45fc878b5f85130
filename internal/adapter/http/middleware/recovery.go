package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/voelivre/voelivre-api/internal/adapter/http/response"
)

// Recover returns middleware that recovers from panics in the handler chain.
// The panic is logged with its stack trace and the client gets a generic 500
// so internal details never leak; the server keeps serving.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg).
						Str("stack", string(debug.Stack())).
						Msg("Panic recovered")

					if !c.Response().Committed {
						c.JSON(http.StatusInternalServerError, &response.ErrorDetail{
							Code:    response.CodeInternalError,
							Message: response.MsgInternalError,
						})
					}
				}
			}()

			return next(c)
		}
	}
}
