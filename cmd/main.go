package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobcast/db/migrations"
	"jobcast/internal/adapter/http"
	"jobcast/internal/adapter/usecase"
	"jobcast/internal/app"
	"jobcast/internal/config"
	"jobcast/internal/db"
)

// main loads configuration, optionally applies migrations, wires the
// enforcement engine, then serves the admin API and runs the scheduled
// limit checks until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String(), 0)
		if err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully", slog.Uint64("from", uint64(from)), slog.Uint64("to", migrations.Version))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	var wg sync.WaitGroup
	if cfg.Limits.Interval > 0 {
		scheduler := usecase.NewScheduler(engine.Controller, cfg.Limits.Interval, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = scheduler.Run(ctx)
		}()
	} else {
		logger.Info("scheduled limit checks disabled")
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Limits:     engine.Controller,
		Dispatcher: engine.Dispatcher,
		Audit:      engine.AuditLog,
		Metrics:    promhttp.HandlerFor(engine.Registry, promhttp.HandlerOpts{}),
	}, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
		logger.Info("shutting down")
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
	wg.Wait()
}
