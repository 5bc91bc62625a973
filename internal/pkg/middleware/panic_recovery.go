package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics and
// logs the stack trace instead of crashing the server.
func PanicRecoveryMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.WithFields(logrus.Fields{
						"panic":  fmt.Sprintf("%v", r),
						"path":   c.Request().URL.Path,
						"method": c.Request().Method,
						"stack":  string(debug.Stack()),
					}).Error("panic recovered")

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
