package service

import (
	"net/http"

	"github.com/growthops/deeplink-checker/config"
)

// BaseService carries the dependencies shared by all services: the
// configuration object and the outbound HTTP client.
type BaseService struct {
	Config *config.Config
	Client *http.Client
}

// NewBaseService creates a new base service. The client timeout is the
// configured upstream timeout, falling back to the default.
func NewBaseService(conf *config.Config) *BaseService {
	timeout := conf.UpstreamTimeout
	if timeout <= 0 {
		timeout = config.DefaultUpstreamTimeout
	}
	return &BaseService{
		Config: conf,
		Client: &http.Client{Timeout: timeout},
	}
}

type BaseSvcOptions func(s *BaseService)

func (s *BaseService) WithOptions(opts ...BaseSvcOptions) *BaseService {
	newService := *s
	for _, opt := range opts {
		opt(&newService)
	}
	return &newService
}

// WithClient replaces the outbound HTTP client, used by tests to point
// the forwarder at a stub upstream.
func WithClient(client *http.Client) BaseSvcOptions {
	return func(s *BaseService) {
		s.Client = client
	}
}
