// Command close-stale closes stall openings that were never closed by their
// vendor. It is intended to be invoked by an external cron job.
//
// Flags:
//
//	--older-than  override opening.stale_after (e.g. "20h")
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/encuentrame-backend/internal/app"
	"github.com/heartmarshall/encuentrame-backend/internal/config"
)

func main() {
	olderThan := flag.Duration("older-than", 0, "close openings older than this (default: opening.stale_after)")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	age := cfg.Opening.StaleAfter
	if *olderThan > 0 {
		age = *olderThan
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("wire application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	res, err := a.Openings.CloseStale(ctx, age)
	if err != nil {
		logger.Error("close stale failed",
			slog.String("error", err.Error()),
			slog.Duration("older_than", age),
		)
		a.Close()
		os.Exit(1)
	}

	logger.Info("close stale completed",
		slog.Int("scanned", res.Scanned),
		slog.Int("closed", res.Closed),
		slog.Int("failed", res.Failed),
		slog.Duration("older_than", age),
	)

	if res.Failed > 0 {
		a.Close()
		os.Exit(1)
	}
}
