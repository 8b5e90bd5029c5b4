// Package database provides the storage layer built on GORM with connection
// pooling, retrying connection establishment, and auto-migration.
package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mfrancor/characters-api/logger"
)

// DB wraps a GORM database with service logging.
type DB struct {
	GormDB *gorm.DB
	log    *logger.Logger
	cfg    Config
}

// New opens a database connection with retry logic and connection pooling.
func New(cfg Config, log *logger.Logger, dialector gorm.Dialector) (*DB, error) {
	return NewWithContext(context.Background(), cfg, log, dialector)
}

// NewWithContext opens a database connection; the context allows
// cancellation of connection attempts during retries.
func NewWithContext(ctx context.Context, cfg Config, log *logger.Logger, dialector gorm.Dialector) (*DB, error) {
	cfg.ApplyDefaults()
	log = log.WithComponent("database")

	gormCfg := &gorm.Config{
		Logger: newGormLogger(log, cfg.LogLevel),
	}

	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("database connection canceled: %w", ctx.Err())
		}

		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
				err = pingErr
			} else {
				sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
				sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
				log.Info("Database connection established", map[string]interface{}{
					"attempt": attempt,
				})
				return &DB{GormDB: db, log: log, cfg: cfg}, nil
			}
		}

		if attempt < cfg.MaxRetries {
			backoff := time.Duration(attempt) * time.Second
			log.Warn("Database connection attempt failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"error":   err.Error(),
				"backoff": backoff.String(),
			})
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("database connection canceled during retry: %w", ctx.Err())
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.MaxRetries, err)
}

// Close closes the underlying sql.DB connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.GormDB.DB()
	if err != nil {
		return err
	}
	d.log.Info("Closing database connection")
	return sqlDB.Close()
}

// Ping verifies the database connection is alive.
func (d *DB) Ping() error {
	sqlDB, err := d.GormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// WithContext returns a GORM session scoped to the given context.
func (d *DB) WithContext(ctx context.Context) *gorm.DB {
	return d.GormDB.WithContext(ctx)
}

// AutoMigrate runs GORM auto-migration for the given models.
func (d *DB) AutoMigrate(models ...interface{}) error {
	for _, model := range models {
		if err := d.GormDB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	d.log.Info("Auto-migration completed", map[string]interface{}{
		"models": len(models),
	})
	return nil
}
