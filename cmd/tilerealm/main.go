// Package main is the entry point for tilerealm.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"tilerealm/internal/logger"
	"tilerealm/internal/realm"
	"tilerealm/internal/telemetry"
)

var log = logger.L()

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env for local development before the environment is read
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	cfg := realm.GetConfig()
	defer logger.Close()

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warnf("Telemetry setup failed, running without observability: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warnf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	r, err := realm.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing realm: %w", err)
	}
	defer r.Close()

	return r.Run(ctx)
}

// setupOTelEnv fills in collector settings for the default Honeycomb setup.
// A .env file provides HONEYCOMB_TILEREALM_API_KEY for local development.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_TILEREALM_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TILEREALM_DATASET")
	if dataset == "" {
		dataset = "tilerealm"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
