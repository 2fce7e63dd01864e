// Command import loads YAML event definitions into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -events ./events -year 2082 -db data/events.db
//
// This tool:
// 1. Creates/opens the SQLite database
// 2. Runs migrations to ensure schema is current
// 3. Loads events.yaml plus the per-year file from the events directory
// 4. Imports every definition in a single transaction
//
// The import is idempotent: re-running it updates existing definitions
// in place.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nepcal/panchanga-api/internal/bikram"
	"github.com/nepcal/panchanga-api/internal/database"
	"github.com/nepcal/panchanga-api/internal/events"
	"github.com/nepcal/panchanga-api/internal/panchanga"
)

func main() {
	eventsDir := flag.String("events", "", "Directory of YAML event files (empty: embedded defaults)")
	bsYear := flag.Int("year", 0, "BS year for the per-year file (0: current year)")
	dbPath := flag.String("db", "data/events.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*eventsDir, *bsYear, *dbPath, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(eventsDir string, bsYear int, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	start := time.Now()

	if bsYear == 0 {
		today := panchanga.TodayInNepal()
		bsYear = bikram.FromGregorian(today.Year(), int(today.Month()), today.Day()).Year
	}

	var set *events.Set
	if eventsDir == "" {
		logger.Info("no events directory given, importing embedded defaults")
		set = events.Default()
	} else {
		var err error
		set, err = events.LoadDir(eventsDir, bsYear)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
	}
	logger.Info("event definitions parsed",
		slog.Int("count", set.Len()),
		slog.Int("bs_year", bsYear),
	)

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	applied, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Debug("migrations applied", slog.Int("count", applied))

	all := set.All()
	records := make([]database.EventRecord, 0, len(all))
	for _, e := range all {
		records = append(records, database.RecordFromEvent(e))
	}

	count, err := db.ImportEvents(ctx, records)
	if err != nil {
		return fmt.Errorf("import events: %w", err)
	}

	logger.Info("events imported",
		slog.Int("count", count),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}
