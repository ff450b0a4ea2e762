package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gallery/backend/internal/config"
	"gallery/backend/internal/logging"
	"gallery/backend/internal/metrics"
	"gallery/backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenFunc builds a new gorm handle. It is called at most once per
// successful pool construction.
type OpenFunc func() (*gorm.DB, error)

// Pool is the process-wide, lazily constructed connection pool. The
// underlying *gorm.DB is created on the first Conn call; a failed attempt
// is not remembered, so the next caller tries again.
type Pool struct {
	open OpenFunc

	mu sync.Mutex
	db *gorm.DB
}

// NewPool returns a pool that constructs its handle with open.
func NewPool(open OpenFunc) *Pool {
	return &Pool{open: open}
}

// New returns a pool for the configured driver. Nothing is dialled until
// the first query.
func New(cfg *config.Config) *Pool {
	return NewPool(func() (*gorm.DB, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		var dialector gorm.Dialector
		switch cfg.DBDriver {
		case config.DriverPostgres:
			dialector = postgres.Open(cfg.DSN())
		default:
			dialector = mysql.Open(cfg.DSN())
		}

		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: logging.GormLogger(200 * time.Millisecond),
		})
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", cfg.DBDriver, err)
		}

		if err := Configure(db, cfg); err != nil {
			return nil, err
		}

		logging.Info().Str("driver", cfg.DBDriver).Int("max_open_conns", cfg.DBMaxOpenConns).Msg("database connection established")
		return db, nil
	})
}

// Configure applies pool sizing and, when enabled, schema migration.
func Configure(db *gorm.DB, cfg *config.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access sql pool: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	}

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			return err
		}
	}
	return nil
}

// Migrate creates or updates the four gallery tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	logging.Info().Msg("database migrated successfully")
	return nil
}

// Conn returns the shared handle bound to ctx, constructing it on first use.
func (p *Pool) Conn(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		db, err := p.open()
		if err != nil {
			return nil, err
		}
		p.db = db
	}

	if sqlDB, err := p.db.DB(); err == nil {
		metrics.DBConnectionsOpen.Set(float64(sqlDB.Stats().OpenConnections))
	}
	return p.db.WithContext(ctx), nil
}

// Ping checks that the store is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	db, err := p.Conn(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool if it was ever constructed.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	p.db = nil
	return sqlDB.Close()
}
