package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kanakku/config"
	deliverycontext "kanakku/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes gorm output to the request-scoped slog logger so
// queries carry the request ID.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}
	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether a finished query is logged and at which level.
// Record-not-found is expected for ownership lookups and never logged as an error.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (slog.Level, string, slog.Attr, bool) {
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		return slog.LevelError, "GORM query failed", slog.String("error", err.Error()), true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "GORM slow query", slog.Duration("slowThreshold", l.slowThreshold), true
	case l.level >= logger.Info:
		return slog.LevelInfo, "GORM query", slog.Attr{}, true
	default:
		return 0, "", slog.Attr{}, false
	}
}
