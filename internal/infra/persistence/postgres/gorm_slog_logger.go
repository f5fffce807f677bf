package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fitbot/config"
	deliverycontext "fitbot/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog, preferring the request-scoped logger of ctx.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		base:          base.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "GORM message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg := slog.LevelInfo, "GORM query"

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg = slog.LevelError, "GORM query failed"
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "GORM slow query"
	case l.level < logger.Info:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if level == slog.LevelError {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
		return reqLogger.With(slog.String("component", "gorm"))
	}

	return l.base
}
