package v1

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/growthops/deeplink-checker/config"
	middleware_link "github.com/growthops/deeplink-checker/middleware"
	"github.com/growthops/deeplink-checker/service"
)

// APIV1Service aggregates the services behind version 1 of the API and
// registers their routes. It handles the common HTTP request logic:
// extracting data from the request body, delegating to the embedded
// services and preparing the response envelope.
type APIV1Service struct {
	service.DeeplinkService

	Config *config.Config
}

func NewAPIV1Service(conf *config.Config) *APIV1Service {
	base := service.NewBaseService(conf)
	return &APIV1Service{
		DeeplinkService: *service.NewDeeplinkService(base),

		Config: conf,
	}
}

// RegistryRoutes register all routes for API v1.
func (s *APIV1Service) RegistryRoutes(_ context.Context, echoServer *echo.Echo) error {
	echoServer.Use(middleware_link.RequestLogger())

	v1 := echoServer.Group("/api/v1")

	deeplink := v1.Group("/deeplink")
	{
		// Limit 60 requests per minute, the upstream gateway throttles
		// well below that anyway.
		deeplink.POST("/check", s.CheckDeeplinkHandler, middleware_link.RequestRateLimiter(60, time.Minute))
	}

	// Plain proxy route kept for callers of the original service.
	echoServer.POST("/check-deeplink", s.ForwardDeeplinkHandler)

	return nil
}
