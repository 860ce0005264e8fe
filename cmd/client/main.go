package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/solid-pod/internal/adapter"
	"github.com/MKhiriev/solid-pod/internal/client"
	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("solid-pod-client")
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) == 1 && args[0] == "version" {
		printBuildInfo()
		return
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	mode, err := cfg.Mode()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing auth mode")
	}

	resourceClient, err := adapter.NewHTTPResourceClient(adapter.HTTPClientConfig{
		BaseURL:     cfg.ServerURL,
		Timeout:     cfg.Timeout,
		AuthMode:    mode,
		BearerToken: cfg.BearerToken,
		PKIKeyID:    cfg.PKIKeyID,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating resource client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(resourceClient, os.Stdin, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
