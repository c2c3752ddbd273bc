package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/growthops/deeplink-checker/api/v1/server"
	"github.com/growthops/deeplink-checker/config"
	"github.com/growthops/deeplink-checker/log"
)

const (
	greetingBanner = `
██████  ███████ ███████ ██████  ██      ██ ███    ██ ██   ██
██   ██ ██      ██      ██   ██ ██      ██ ████   ██ ██  ██
██   ██ █████   █████   ██████  ██      ██ ██ ██  ██ █████
██   ██ ██      ██      ██      ██      ██ ██  ██ ██ ██  ██
██████  ███████ ███████ ██      ███████ ██ ██   ████ ██   ██
`
)

var (
	rootCmd = cobra.Command{
		Use:   "deeplink-checker",
		Short: "Deeplink Check Forwarder",
		Run:   run,
	}
)

func run(_ *cobra.Command, _ []string) {
	instanceConfig := config.NewConfig()
	log.SetupLogger(instanceConfig.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())

	s, err := server.NewServer(ctx, instanceConfig)
	if err != nil {
		cancel()
		fmt.Printf("Failed to create server: %s", err)
		return
	}

	if err := s.Start(); err != nil {
		fmt.Printf("Failed to start server: %s", err)
		cancel()
	}

	printGreeting(instanceConfig)

	c := make(chan os.Signal, 1)
	// Shutdown server when receive signal
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		s.Shutdown(ctx)
		cancel()
	}()

	// Waiting for shutdown signal
	<-ctx.Done()
}

func init() {
	setupDefaults()
	setupCommandLine()
	if err := config.SetupConfig(); err != nil {
		fmt.Printf("Failed to setup config: %s\n", err)
		os.Exit(1)
	}
}

func setupDefaults() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("addr", "0.0.0.0")
	viper.SetDefault("port", 8000)
	viper.SetDefault("upstream.url", config.DefaultUpstreamURL)
	viper.SetDefault("upstream.timeout", config.DefaultUpstreamTimeout)
	viper.SetDefault("upstream.allow_override", false)
	viper.SetDefault("log.level", "info")
}

func setupCommandLine() {
	rootCmd.PersistentFlags().String("config_file", "", "path to config file")
	rootCmd.PersistentFlags().String("mode", "", "mode of server, can be 'prod' or 'dev'")
	rootCmd.PersistentFlags().String("addr", "", "binding address for server")
	rootCmd.PersistentFlags().Int("port", 0, "binding port for server")
	rootCmd.PersistentFlags().String("upstream.url", "", "upstream deeplink verification endpoint")
	rootCmd.PersistentFlags().Duration("upstream.timeout", 0, "upstream call timeout")
	rootCmd.PersistentFlags().Bool("upstream.allow_override", false, "allow callers to override the upstream endpoint")
	rootCmd.PersistentFlags().String("log.level", "", "Log level")

	// Ensure command-line parameters are bound to Viper
	bindFlagsToViper()
}

func bindFlagsToViper() {
	viper.BindPFlag("config_file", rootCmd.PersistentFlags().Lookup("config_file"))
	viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("upstream.url", rootCmd.PersistentFlags().Lookup("upstream.url"))
	viper.BindPFlag("upstream.timeout", rootCmd.PersistentFlags().Lookup("upstream.timeout"))
	viper.BindPFlag("upstream.allow_override", rootCmd.PersistentFlags().Lookup("upstream.allow_override"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log.level"))
}

func printGreeting(conf *config.Config) {
	print(greetingBanner)
	fmt.Printf(`---
Server profile
addr:     %s
port:     %d
mode:     %s
upstream: %s
---
`, conf.Addr, conf.Port, conf.Mode, conf.UpstreamURL)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
