package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// slowQuery is the duration above which a catalog query is logged at warn
// whatever level pgx reported it at.
const slowQuery = 500 * time.Millisecond

// pgxLogger routes pgx tracelog events into the service logger.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("component", "pgx").Logger()}
}

// Log implements tracelog.Logger. Statement text and bind arguments are only
// emitted at trace; the query duration becomes a "took" field.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if level == tracelog.LogLevelNone {
		return
	}

	fields := make(map[string]any, len(data))
	for k, v := range data {
		fields[k] = v
	}

	took, timed := fields["time"].(time.Duration)
	if timed {
		delete(fields, "time")
	}
	slow := timed && took >= slowQuery && level > tracelog.LogLevelWarn

	var event *zerolog.Event
	if slow {
		event = l.logger.Warn().Bool("slow", true)
	} else {
		event = l.eventFor(level)
	}

	if level == tracelog.LogLevelTrace {
		if sql, ok := fields["sql"].(string); ok {
			event = event.Str("sql", sql)
			delete(fields, "sql")
		}
	} else {
		delete(fields, "sql")
		delete(fields, "args")
	}
	if timed {
		event = event.Dur("took", took)
	}
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func (l *pgxLogger) eventFor(level tracelog.LogLevel) *zerolog.Event {
	switch level {
	case tracelog.LogLevelTrace:
		return l.logger.Trace()
	case tracelog.LogLevelDebug:
		return l.logger.Debug()
	case tracelog.LogLevelInfo:
		return l.logger.Info()
	case tracelog.LogLevelWarn:
		return l.logger.Warn()
	case tracelog.LogLevelError:
		return l.logger.Error()
	default:
		return l.logger.Info().Str("pgx_level", level.String())
	}
}
