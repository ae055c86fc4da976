package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/maxviazov/catalog-pagination/internal/config"
)

const startupPingTimeout = 5 * time.Second

// Repository owns the pgx connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// New opens the pool, wires pgx tracing into the logger and pings the
// database once so a bad DSN fails at startup rather than on first request.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Repository, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	poolConfig, err := pgxpool.ParseConfig(BuildDSN(cfg.Postgres))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newPgxLogger(*logger),
		LogLevel: tracelogLevel(logger.GetLevel()),
	}

	pg := cfg.Postgres
	poolConfig.MaxConns = pg.MaxConns
	poolConfig.MinConns = pg.MinConns
	poolConfig.MaxConnLifetime = time.Duration(pg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = time.Duration(pg.MaxConnIdleTime) * time.Second
	poolConfig.HealthCheckPeriod = time.Duration(pg.HealthCheckPeriod) * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info().
		Str("host", pg.Host).
		Int("port", pg.Port).
		Str("user", pg.User).
		Str("db", pg.DBName).
		Int32("max_conns", pg.MaxConns).
		Msg("connected to postgres")

	return &Repository{pool: pool}, nil
}

// Pool exposes the pool to the concrete repositories in the postgres package.
func (r *Repository) Pool() *pgxpool.Pool { return r.pool }

func (r *Repository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// BuildDSN assembles a postgres:// URL; url.URL takes care of escaping credentials.
func BuildDSN(pg config.PostgresConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", pg.Host, pg.Port),
		Path:   pg.DBName,
	}
	if pg.User != "" || pg.Password != "" {
		u.User = url.UserPassword(pg.User, pg.Password)
	}
	q := u.Query()
	if pg.SSLMode != "" {
		q.Set("sslmode", pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// tracelogLevel keeps pgx at least as quiet as the application logger.
func tracelogLevel(level zerolog.Level) tracelog.LogLevel {
	switch {
	case level <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case level <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case level <= zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case level <= zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
