package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/maxviazov/catalog-pagination/internal/pagination"
)

// Load reads the YAML file at path and overlays APP_* environment variables
// (app.port -> APP_APP_PORT, postgres.user -> APP_POSTGRES_USER).
// A .env file in the same directory is loaded first if present; it never
// overrides variables that are already set.
func Load(path string) (*Config, error) {
	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	setDefaults(v)

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	if config.App.Storage == StoragePostgres {
		if err := validate.Struct(&config.Postgres); err != nil {
			return nil, fmt.Errorf("postgres config validation error: %w", err)
		}
	}
	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it even when
// the YAML file leaves it out (secrets usually are).
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "catalog-pagination")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10)
	v.SetDefault("app.storage", StoragePostgres)
	v.SetDefault("app.seed_datasets", 250)

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.env", "")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)

	v.SetDefault("pagination.max_visible_pages", pagination.DefaultMaxVisiblePages)
	v.SetDefault("pagination.default_page_size", 20)
	v.SetDefault("pagination.max_page_size", 100)
}
