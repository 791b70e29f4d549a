package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mkarpushin/pr-tracker/internal/config"
	"github.com/mkarpushin/pr-tracker/internal/httpserver"
	"github.com/mkarpushin/pr-tracker/internal/repository/gh"
	"github.com/mkarpushin/pr-tracker/internal/usecase/auth"
	"github.com/mkarpushin/pr-tracker/internal/usecase/org"
	"github.com/mkarpushin/pr-tracker/internal/usecase/prs"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 5 * time.Second

// SetupLogger builds the slog logger for the given environment.
func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

// Run wires the gh-backed services into the HTTP server and blocks until a
// shutdown signal arrives or ctx is cancelled.
func Run(ctx context.Context, log *slog.Logger, cfg *config.Config) error {
	ghClient := gh.New(log, gh.NewCLIRunner(cfg.GitHubConfig.Binary))

	router := httpserver.NewRouter(log, httpserver.Services{
		Auth: auth.New(log, ghClient),
		Org:  org.New(log, ghClient),
		PRs:  prs.New(log, ghClient, cfg.GitHubConfig.Workers),
	}, cfg.HTTPServerConfig.AllowedOrigin)

	addr := cfg.HTTPServerConfig.Host + ":" + strconv.Itoa(cfg.HTTPServerConfig.Port)

	// No WriteTimeout: the aggregation endpoints legitimately block for the
	// duration of the underlying gh calls.
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTPServerConfig.Timeout,
		IdleTimeout:       cfg.HTTPServerConfig.IdleTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info("starting server", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
		log.Info("shutdown signal received")
	case <-ctx.Done():
		log.Info("context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server exited gracefully")

	return nil
}
