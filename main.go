package main

import (
	"context"
	"log"

	"intake-agent/internal/bootstrap"
	"intake-agent/internal/config"
	"intake-agent/internal/observability"
	"intake-agent/internal/server"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Listen first: an ngrok tunnel decides the public base URL.
	ln, err := server.Listen(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to listen", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx, ln); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Error(ctx, "server shutdown failed", err)
	}
}
