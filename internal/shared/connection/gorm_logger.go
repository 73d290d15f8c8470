package connection

import (
	"context"
	"errors"
	"time"

	"go-bonus/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// GormLogger routes gorm's statement log through zap. Statements issued with
// a request context use that request's logger, so they carry its request_id.
type GormLogger struct {
	base  *zap.Logger
	level logger.LogLevel
	slow  time.Duration
}

func NewGormLogger(base *zap.Logger, level logger.LogLevel) *GormLogger {
	if base == nil {
		base = zap.L()
	}
	return &GormLogger{base: base, level: level, slow: defaultSlowQuery}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		l.forContext(ctx).Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		l.forContext(ctx).Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		l.forContext(ctx).Sugar().Errorf(msg, data...)
	}
}

// Trace logs failed statements at error, slow ones at warn and, at Info
// level, every statement at debug.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	stmt, rows := fc()
	fields := []zap.Field{
		zap.String("sql", stmt),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	log := l.forContext(ctx)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error("sql failed", append(fields, zap.Error(err))...)
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		log.Warn("slow sql", append(fields, zap.Duration("threshold", l.slow))...)
	case l.level >= logger.Info:
		log.Debug("sql", fields...)
	}
}

func (l *GormLogger) forContext(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, l.base).Named("gorm")
}
