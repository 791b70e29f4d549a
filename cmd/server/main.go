package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mkarpushin/pr-tracker/internal/app"
	"github.com/mkarpushin/pr-tracker/internal/config"
)

func main() {
	cfg := config.Load()

	log := app.SetupLogger(cfg.Env)

	log.Info("starting application", slog.String("env", cfg.Env))

	if err := app.Run(context.Background(), log, cfg); err != nil {
		log.Error("server failed", slog.Any("err", err))
		os.Exit(1)
	}
}
