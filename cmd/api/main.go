// Package main is the entry point for the panchanga API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nepcal/panchanga-api/internal/api"
	"github.com/nepcal/panchanga-api/internal/bikram"
	"github.com/nepcal/panchanga-api/internal/config"
	"github.com/nepcal/panchanga-api/internal/database"
	"github.com/nepcal/panchanga-api/internal/events"
	"github.com/nepcal/panchanga-api/internal/logger"
	"github.com/nepcal/panchanga-api/internal/panchanga"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	log.Info("starting panchanga API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	// Event definitions come from the database when configured, then a
	// YAML directory, then the embedded defaults.
	set, db, err := loadEvents(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	log.Info("event definitions loaded", slog.Int("count", set.Len()))

	calc := panchanga.NewCalculatorAt(set, nil, cfg.Latitude, cfg.Longitude, cfg.Timezone)
	metrics := api.NewMetrics()
	handlers := api.NewHandlers(calc, db, cfg, log, metrics)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.SetupRoutes(handlers, cfg, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // the ICS export walks a whole year
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// loadEvents resolves the event set from the configured source.
func loadEvents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*events.Set, *database.DB, error) {
	if cfg.DatabasePath != "" {
		db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
		if err != nil {
			return nil, nil, fmt.Errorf("open event database: %w", err)
		}
		if _, err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate event database: %w", err)
		}
		set, err := db.LoadEventSet(ctx)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("load events from database: %w", err)
		}
		if set.Len() > 0 {
			return set, db, nil
		}
		log.Warn("event database is empty, using embedded defaults",
			slog.String("path", cfg.DatabasePath))
		return events.Default(), db, nil
	}

	if cfg.EventsDir != "" {
		today := panchanga.TodayInNepal()
		bs := bikram.FromGregorian(today.Year(), int(today.Month()), today.Day())
		set, err := events.LoadDir(cfg.EventsDir, bs.Year)
		if err != nil {
			return nil, nil, fmt.Errorf("load events from %s: %w", cfg.EventsDir, err)
		}
		log.Info("event files loaded",
			slog.String("dir", cfg.EventsDir),
			logger.BSDate(bs.Year, bs.Month, bs.Day))
		return set, nil, nil
	}

	return events.Default(), nil, nil
}
