package main

import (
	"context"
	"log/slog"
	"os"
	"roomBooker/internal/config"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage/fixtures"
	"roomBooker/internal/storage/postgres"
	"time"
)

func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if cfg.Storage != config.StoragePostgres {
		log.Error("fixtures can only be added to postgres storage", slog.String("storage", cfg.Storage))
		os.Exit(1)
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer storage.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err = storage.Migrate(ctx); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	rooms := fixtures.Rooms()

	added, err := storage.EnsureRooms(ctx, rooms)
	if err != nil {
		log.Error("failed to add fixtures", sl.Err(err))
		os.Exit(1)
	}

	log.Info("fixtures added",
		slog.Int("added", added),
		slog.Int("skipped", len(rooms)-added),
	)
}
