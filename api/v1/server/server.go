package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	v1 "github.com/growthops/deeplink-checker/api/v1"
	"github.com/growthops/deeplink-checker/config"
)

type Server struct {
	Profile *config.Config

	echoServer *echo.Echo
}

// NewServer create a server instance with configuration.
func NewServer(ctx context.Context, profile *config.Config) (*Server, error) {
	s := &Server{
		Profile: profile,
	}

	echoServer := echo.New()
	echoServer.Debug = profile.IsDev()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Use(middleware.Recover())
	s.echoServer = echoServer

	echoServer.GET("/healthcheck", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	apiV1Service := v1.NewAPIV1Service(profile)
	// Adding routes must be before echo server start.
	if err := apiV1Service.RegistryRoutes(ctx, echoServer); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) Start() error {
	go func() {
		if err := s.echoServer.Start(fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)); err != nil {
			if err != http.ErrServerClosed {
				fmt.Printf("failed to start echo server: %v\n", err)
			}
		}
	}()

	return nil
}

// Shutdown shutdown the echo server.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.echoServer.Shutdown(ctx); err != nil {
		fmt.Printf("failed to shutdown server, error: %v\n", err)
	}

	fmt.Printf("deeplink checker is shutdown, bye\n")
}
