package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mkravchenko/linkvault/internal/client/cli"
	"github.com/mkravchenko/linkvault/internal/client/config"
	"github.com/mkravchenko/linkvault/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := logging.NewSlogLogger(slog.New(handler))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
