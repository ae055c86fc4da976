package config

import (
	"github.com/maxviazov/catalog-pagination/internal/logger"
)

// Storage backends for the dataset catalog.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is the whole application configuration, assembled from config.yaml,
// an optional .env next to it and APP_* environment variables.
type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Postgres   PostgresConfig      `mapstructure:"postgres" validate:"-"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	// ShutdownTimeout is in seconds.
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=1"`
	Storage         string `mapstructure:"storage" validate:"oneof=postgres memory"`
	// SeedDatasets is how many demo rows the memory catalog starts with.
	SeedDatasets int `mapstructure:"seed_datasets" validate:"min=0"`
}

// PostgresConfig holds connection and pool tuning. Durations are in seconds.
// Credentials are expected from the environment (APP_POSTGRES_USER etc) and
// are only checked when storage is postgres.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=1"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0,ltefield=MaxConns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"min=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"min=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"min=0"`
}

// PaginationConfig controls listing windows and the rendered page bar.
type PaginationConfig struct {
	MaxVisiblePages int `mapstructure:"max_visible_pages" validate:"min=1,max=50"`
	DefaultPageSize int `mapstructure:"default_page_size" validate:"min=1"`
	MaxPageSize     int `mapstructure:"max_page_size" validate:"gtefield=DefaultPageSize"`
}
