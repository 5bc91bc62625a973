package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if id := c.Get("user_id"); id != nil {
				userID = fmt.Sprintf("%v", id)
			}

			logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"path":       path,
				"status":     c.Response().Status,
				"latency_ms": latency.Milliseconds(),
				"client_ip":  c.RealIP(),
				"user_id":    userID,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).Info("request completed")

			return err
		}
	}
}
