package main

import (
	"context"

	"go-bonus/internal/app"
	"go-bonus/internal/bootstrap"
	"go-bonus/internal/config"
	"go-bonus/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	// build dependency + routes
	a, err := app.BuildApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer a.Close()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(
		a.Router,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  cfg.Server.Read,
			WriteTimeout: cfg.Server.Write,
			IdleTimeout:  cfg.Server.Idle,
		},
		auditLogger,
	); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
