package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options controls how a connection is opened.
type Options struct {
	Driver        string
	DSN           string
	MaxRetries    int
	RetryInterval time.Duration
	Debug         bool
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL not set in environment or .env file")
		}
		return postgres.Open(dsn), nil
	case DriverSQLite:
		if dsn == "" {
			dsn = "officesite.db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the database, retrying until it answers a ping or the
// retry budget is spent.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (*gorm.DB, error) {
	dial, err := dialector(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}
	interval := opts.RetryInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	level := gormlogger.Warn
	if opts.Debug {
		level = gormlogger.Info
	}
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(level)}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		logger.Debug("connecting to database",
			zap.String("driver", opts.Driver),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxRetries))

		db, err := gorm.Open(dial, cfg)
		if err == nil {
			err = ping(ctx, db)
			if err == nil {
				logger.Info("connected to database", zap.String("driver", opts.Driver))
				return db, nil
			}
			Close(db)
		}

		if attempt == maxRetries {
			return nil, fmt.Errorf("connect to database after %d attempts: %w", maxRetries, err)
		}
		logger.Warn("database not ready, retrying",
			zap.Error(err),
			zap.Duration("retry_in", interval))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
	return nil, fmt.Errorf("connect to database: no attempts made")
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
