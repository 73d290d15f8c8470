package app

import (
	"context"

	"go-bonus/internal/bonus"
	"go-bonus/internal/config"
	"go-bonus/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

// NewLogger returns the production zap logger for APP_ENV=production and the
// development logger otherwise.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// OpenDatabase connects to PostgreSQL and makes sure the bonuses table
// exists. Connect, ping and DDL share one retry budget; exhausting it is
// fatal for the caller. After startup a dropped connection is not fatal:
// database/sql discards the broken connection and redials on the next query,
// so the affected request fails with 500 and later ones recover.
func OpenDatabase(ctx context.Context, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Info
	if cfg.IsProduction() {
		level = gormlogger.Warn
	}

	return connection.ConnectPostgresWithRetry(
		ctx,
		cfg.DB,
		&gorm.Config{
			Logger:                 connection.NewGormLogger(logger, level),
			SkipDefaultTransaction: true,
		},
		connection.DefaultMaxRetries,
		bonus.InitSchema,
	)
}

func BuildApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	// 1. Setup Infrastructure
	db, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("✅ Database connection established")

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, connection.DefaultMaxRetries)
		if err != nil {
			closeDB(db)
			return nil, err
		}
		logger.Info("✅ Redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	// 2. Register Modules & Routes
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	registerModules(router, db, rdb, cfg, logger)

	return &App{Router: router, DB: db, Redis: rdb}, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	closeDB(a.DB)
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
