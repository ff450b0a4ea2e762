// Command seed fills an empty gallery database with demo data.
//
// Usage:
//
//	go run ./cmd/seed                          # database from .env / environment
//	go run ./cmd/seed -sqlite gallery.db -galleries 120
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery/backend/internal/config"
	"gallery/backend/internal/database"
	"gallery/backend/internal/logging"
	"gallery/backend/internal/seed"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	sqlitePath = flag.String("sqlite", "", "seed a SQLite file instead of the configured database")
	galleries  = flag.Int("galleries", 60, "number of galleries to create")
	force      = flag.Bool("force", false, "seed even when galleries already exist")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		logging.Fatal().Err(err).Msg("unable to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, closeDB, err := open(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("unable to open database")
	}
	defer closeDB()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = seed.Run(ctx, db, seed.Options{Galleries: *galleries, Force: *force})
	if errors.Is(err, seed.ErrNotEmpty) {
		logging.Warn().Msg("galleries already exist, pass -force to seed anyway")
		return
	}
	if err != nil {
		logging.Error().Err(err).Msg("seeding failed")
		closeDB()
		os.Exit(1)
	}
}

func open(cfg *config.Config) (*gorm.DB, func(), error) {
	if *sqlitePath != "" {
		db, err := gorm.Open(sqlite.Open(*sqlitePath), &gorm.Config{
			Logger: logging.GormLogger(time.Second),
		})
		if err != nil {
			return nil, nil, err
		}
		logging.Info().Str("path", *sqlitePath).Msg("seeding sqlite database")
		return db, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	}

	pool := database.New(cfg)
	db, err := pool.Conn(context.Background())
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = pool.Close() }, nil
}
