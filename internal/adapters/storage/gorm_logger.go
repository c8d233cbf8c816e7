package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/convobar/internal/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// slogGormLogger routes gorm output into logging.Logger
type slogGormLogger struct {
	level logger.LogLevel
}

func newGormLogger(debug bool) logger.Interface {
	if debug {
		return slogGormLogger{level: logger.Info}
	}
	return slogGormLogger{level: logger.Silent}
}

func (l slogGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return slogGormLogger{level: level}
}

func (l slogGormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, data)
}

func (l slogGormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, data)
}

func (l slogGormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, data)
}

func (l slogGormLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, data []any) {
	if l.level >= threshold {
		logging.Logger.Log(ctx, level, fmt.Sprintf(msg, data...))
	}
}

// Trace logs every statement at debug, slow ones at warn and failures at error.
// Not-found is an expected outcome and logs at debug.
func (l slogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level < logger.Info {
		return
	}

	query, rows := fc()
	elapsed := time.Since(begin)
	attrs := []any{"sql", query, "rows", rows, "duration", elapsed}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.ErrorContext(ctx, "query failed", append(attrs, "error", err)...)
	case elapsed > slowQueryThreshold:
		logging.Logger.WarnContext(ctx, "slow query", attrs...)
	default:
		logging.Logger.DebugContext(ctx, "query", attrs...)
	}
}
