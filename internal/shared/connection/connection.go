package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DefaultMaxRetries = 5
	DefaultRetryDelay = 5 * time.Second
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// InitFunc runs inside the retry loop once the pool answers a ping. A failing
// InitFunc consumes an attempt just like a failed connection does.
type InitFunc func(ctx context.Context, db *gorm.DB) error

type GORMOptions struct {
	// Dialector is called once per attempt so every attempt gets a fresh pool.
	Dialector  func() gorm.Dialector
	Config     *gorm.Config
	MaxRetries int
	RetryDelay time.Duration
	Init       InitFunc
	Logger     *zap.Logger
}

func ConnectGORMWithRetry(ctx context.Context, opts GORMOptions) (*gorm.DB, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("connection.gorm")

	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		db, err := connectOnce(ctx, opts)
		if err == nil {
			logger.Info("✅ GORM connected to database", zap.Int("attempt", i))
			return db, nil
		}

		lastErr = err
		logger.Warn("⚠️ database init attempt failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxRetries),
			zap.Error(err),
		)

		if i == maxRetries {
			break
		}
		if err := sleep(ctx, opts.RetryDelay); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func connectOnce(ctx context.Context, opts GORMOptions) (*gorm.DB, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &gorm.Config{}
	}

	db, err := gorm.Open(opts.Dialector(), cfg)
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if opts.Init != nil {
		if err := opts.Init(ctx, db); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("init: %w", err)
		}
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// ConnectPostgresWithRetry opens a PostgreSQL pool for cfg and runs init
// inside the same retry loop.
func ConnectPostgresWithRetry(
	ctx context.Context,
	cfg DBConfig,
	gormCfg *gorm.Config,
	maxRetries int,
	init InitFunc,
) (*gorm.DB, error) {
	dsn := cfg.DSN()
	return ConnectGORMWithRetry(ctx, GORMOptions{
		Dialector:  func() gorm.Dialector { return postgres.Open(dsn) },
		Config:     gormCfg,
		MaxRetries: maxRetries,
		RetryDelay: DefaultRetryDelay,
		Init:       init,
	})
}

func ConnectRedisWithRetry(ctx context.Context, addr string, maxRetries int) (*redis.Client, error) {
	logger := zap.L().Named("connection.redis")
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		if lastErr = rdb.Ping(ctx).Err(); lastErr == nil {
			logger.Info("✅ Connected to Redis", zap.String("addr", addr))
			return rdb, nil
		}

		logger.Warn("⚠️ Redis retry failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxRetries),
			zap.Error(lastErr),
		)
		if i == maxRetries {
			break
		}
		if err := sleep(ctx, DefaultRetryDelay); err != nil {
			_ = rdb.Close()
			return nil, err
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect redis after %d retries: %w", maxRetries, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
