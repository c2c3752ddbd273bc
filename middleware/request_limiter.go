package middleware

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/labstack/echo/v4"
)

// Example: RequestRateLimiter(3, time.Minute) represents 3 requests per minute
func RequestRateLimiter(maxRequests int64, period time.Duration) echo.MiddlewareFunc {
	rate := float64(maxRequests) / period.Seconds()
	limiter := tollbooth.NewLimiter(rate, nil)
	limiter.SetMessage("Too many requests")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			httpError := tollbooth.LimitByRequest(limiter, c.Response().Writer, c.Request())
			if httpError != nil {
				return c.Blob(httpError.StatusCode, limiter.GetMessageContentType(), []byte(httpError.Message))
			}
			return next(c)
		}
	}
}
