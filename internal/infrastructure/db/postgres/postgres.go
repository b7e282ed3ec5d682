package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a Postgres
// connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a gorm connection, verifies connectivity with a ping, and
// returns the handle. Driver errors are translated to gorm sentinel errors
// (gorm.ErrDuplicatedKey in particular) so the repositories can map them to
// domain errors.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the users and offers tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &offerModel{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
