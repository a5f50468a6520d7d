// Package main is the entry point for the cloud-cost API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"cloud-cost/internal/app"
	"cloud-cost/internal/config"
	"cloud-cost/internal/logging"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "cloud-cost.yaml", "Path to configuration file")
	addr := flag.String("addr", "", "Server address (overrides config)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cloud-cost %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()
	logger := logging.Named("server")

	logger.Info("Starting cloud-cost",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("config", *configPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, cfg, logger, Version); err != nil {
		logger.Error("Server failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
