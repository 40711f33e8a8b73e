package db

import (
	"context"
	"fmt"
	"time"

	"caregiver-app-go/internal/config"
	"caregiver-app-go/pkg/logger"
	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute

	probeMaxRetries = 2 // 3 attempts total
	probeBaseDelay  = 2 * time.Second
)

func NewPostgres(cfg config.DBConfig, log logger.Logger) (*gorm.DB, error) {
	log.Info("db: opening postgres connection pool")

	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = defaultMaxIdleConns
	}
	connMaxLifetime := cfg.ConnMaxLifetime
	if connMaxLifetime == 0 {
		connMaxLifetime = defaultConnMaxLifetime
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return gormDB, nil
}

// Probe checks connectivity with a bounded number of attempts and exponential
// backoff. A hosted database may be asleep at process start; callers treat an
// exhausted probe as a warning and let the first request surface the error.
func Probe(ctx context.Context, gormDB *gorm.DB, log logger.Logger) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("db handle: %w", err)
	}

	attempt := 0
	backoff := retry.WithMaxRetries(probeMaxRetries, retry.NewExponential(probeBaseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := sqlDB.PingContext(ctx); err != nil {
			log.Warn("db: connectivity probe failed", "attempt", attempt, "err", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}
