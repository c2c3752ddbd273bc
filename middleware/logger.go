package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/growthops/deeplink-checker/log"
)

// RequestLogger logs every request with a generated request id, status,
// latency and client ip.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := uuid.New().String()
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			log.Log.WithFields(logrus.Fields{
				"request_id": requestID,
				"status":     c.Response().Status,
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"ip":         c.RealIP(),
				"latency":    latency,
			}).Info("Request details")

			return err
		}
	}
}
