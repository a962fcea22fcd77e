// Command sfrfscan computes spectral fault receptive fields for every
// member of a vibration ensemble database.
//
// Usage:
//
//	sfrfscan -c config.yaml -db ensemble.db
//
// The configuration file describes the bearing geometry, the operating
// grid, and the receptive-field shape parameters. Per-member responses
// are written back to the ensemble database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-bearing/cmd/sfrfscan/app"
)

func main() {
	var logLevel slog.LevelVar
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel}))

	var configPath, dbPath string
	var workers int
	flag.StringVar(&configPath, "c", "", "Path to the configuration file")
	flag.StringVar(&dbPath, "db", "", "Path to the ensemble database")
	flag.IntVar(&workers, "workers", 0, "Worker count (0 = GOMAXPROCS)")
	flag.Parse()

	if configPath == "" || dbPath == "" {
		logger.Error("both -c and -db are required")
		os.Exit(1)
	}

	config, err := app.LoadConfig(configPath)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load configuration file: %s", err), slog.String("path", configPath))
		os.Exit(1)
	}

	logLevel.Set(config.Settings.Level())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, config, dbPath, workers, logger); err != nil {
		logger.Error(err.Error())

		cancel()
		os.Exit(1)
	}
}
