// Package config builds the configuration for the forwarder.
// The Config instance is created once at startup and passed by reference
// into the server and services, so there is no hidden global state to
// patch in tests.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultUpstreamURL is the deeplink verification endpoint of the
	// intercom API gateway.
	DefaultUpstreamURL = "https://intercom-api-gateway.moengage.com/v2/iw/check-deeplink"

	// DefaultUpstreamTimeout bounds a single upstream call.
	DefaultUpstreamTimeout = 30 * time.Second
)

// Config is the configuration to start the forwarder server.
type Config struct {
	ConfigFile string
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int

	// UpstreamURL is the deeplink verification endpoint requests are
	// forwarded to.
	UpstreamURL string
	// UpstreamTimeout bounds a single upstream call.
	UpstreamTimeout time.Duration
	// RefreshToken is the bearer credential attached to upstream calls.
	// It may be empty; absence is reported per call, not at startup.
	RefreshToken string
	// AllowEndpointOverride permits callers to supply their own upstream
	// URL in the request body.
	AllowEndpointOverride bool

	// For log
	LogLevel string
}

func (c *Config) IsDev() bool {
	return c.Mode != "prod"
}

// NewConfig create a new Config instance from the current viper state.
func NewConfig() *Config {
	return &Config{
		ConfigFile:            viper.GetString("config_file"),
		Mode:                  viper.GetString("mode"),
		Addr:                  viper.GetString("addr"),
		Port:                  viper.GetInt("port"),
		UpstreamURL:           viper.GetString("upstream.url"),
		UpstreamTimeout:       viper.GetDuration("upstream.timeout"),
		RefreshToken:          viper.GetString("refresh_token"),
		AllowEndpointOverride: viper.GetBool("upstream.allow_override"),
		LogLevel:              viper.GetString("log.level"),
	}
}

// SetupConfig wires viper: env bindings and the optional config file.
//
// A missing config file is not an error, flags and environment variables
// are enough to run the forwarder.
func SetupConfig() error {
	// DEEPLINK_CHECKER_REFRESH_TOKEN is the documented variable,
	// REFRESH_TOKEN is kept as a legacy alias.
	if err := viper.BindEnv("refresh_token", "DEEPLINK_CHECKER_REFRESH_TOKEN", "REFRESH_TOKEN"); err != nil {
		return err
	}

	if configFile := viper.GetString("config_file"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.deeplink-checker/")
		viper.AddConfigPath("/etc/deeplink-checker/")
		viper.AddConfigPath("./config")
		viper.SetConfigName("deeplink-checker")
		viper.SetConfigType("toml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}
