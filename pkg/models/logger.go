package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which queries are logged as warnings.
const slowQuery = 500 * time.Millisecond

// queryLogger sends GORM's log output to zerolog. Queries are logged at
// debug level, slow queries as warnings and failed queries as errors.
type queryLogger struct {
	log   zerolog.Logger
	level gormlogger.LogLevel
}

func newQueryLogger(l zerolog.Logger) *queryLogger {
	return &queryLogger{log: l.With().Str("component", "gorm").Logger(), level: gormlogger.Info}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &queryLogger{log: l.log, level: level}
}

func (l *queryLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info().Msgf(msg, args...)
	}
}

func (l *queryLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn().Msgf(msg, args...)
	}
}

func (l *queryLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error().Msgf(msg, args...)
	}
}

func (l *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gormlogger.ErrRecordNotFound):
		event = l.log.Error().Err(err)
	case elapsed >= slowQuery:
		event = l.log.Warn().Bool("slow", true)
	default:
		event = l.log.Debug()
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
}
