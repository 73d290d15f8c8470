package app

import (
	"go-bonus/internal/bonus"
	"go-bonus/internal/config"
	"go-bonus/internal/diagnostics"
	"go-bonus/internal/middleware"
	"go-bonus/internal/shared/apperror"
	"go-bonus/internal/shared/contextutil"
	"go-bonus/internal/shared/metrics"
	"go-bonus/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) {
	router.Use(
		gin.CustomRecovery(recoverPanic),
		middleware.ContextLogger(logger),
		middleware.AccessLog(),
		middleware.Metrics(),
	)

	// --- Repositories ---
	bonusRepo := bonus.NewRepository(gormDB)

	// --- Services ---
	bonusService := bonus.NewService(bonusRepo, logger)

	// --- Handlers ---
	bonusHandler := bonus.NewHandler(bonusService, logger)
	diagnosticsHandler := diagnostics.NewHandler(
		diagnostics.NewDNSResolver(diagnostics.DefaultResolvConf, logger),
		cfg.DB.Host,
		logger,
	)

	// --- Routes Registration ---
	var createMiddleware []gin.HandlerFunc
	if rdb != nil {
		createMiddleware = append(createMiddleware, middleware.Idempotency(rdb))
	}

	api := router.Group("/api")
	{
		bonus.RegisterRoutes(api, bonusHandler, createMiddleware...)
	}

	diagnostics.RegisterRoutes(router, diagnosticsHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound.HTTPStatus, apperror.ErrNotFound.Code, apperror.ErrNotFound.Message, nil)
	})
}

func recoverPanic(c *gin.Context, recovered any) {
	contextutil.GetLogger(c.Request.Context(), zap.L()).Error("panic recovered",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.Stack("stack"),
	)
	response.AbortError(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Code, apperror.ErrInternal.Message)
}
