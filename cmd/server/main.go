package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/catalog-pagination/internal/config"
	"github.com/maxviazov/catalog-pagination/internal/handler"
	"github.com/maxviazov/catalog-pagination/internal/logger"
	"github.com/maxviazov/catalog-pagination/internal/metrics"
	"github.com/maxviazov/catalog-pagination/internal/repository"
	"github.com/maxviazov/catalog-pagination/internal/repository/memory"
	"github.com/maxviazov/catalog-pagination/internal/repository/postgres"
	"github.com/maxviazov/catalog-pagination/internal/service"
)

func main() {
	path := os.Getenv("APP_CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	if cfg.Logger.Env == "" && cfg.App.Env != "test" {
		cfg.Logger.Env = cfg.App.Env
	}
	if cfg.Logger.ServiceName == "" {
		cfg.Logger.ServiceName = cfg.App.Name
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, pinger, closeStore, err := openStorage(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Str("storage", cfg.App.Storage).Msg("storage initialization failed")
	}
	defer closeStore()

	m := metrics.New()
	pager := service.NewPaginationService(cfg.Pagination, m, appLogger)
	datasets := service.NewDatasetService(repo, pager, cfg.Pagination, appLogger)

	engine := handler.NewEngine(handler.Deps{
		Pinger:     pinger,
		Pagination: pager,
		Datasets:   datasets,
		Metrics:    m,
		Logger:     appLogger,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			appLogger.Error().Err(err).Msg("http server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("server stopped")
}

// openStorage picks the dataset backend named by app.storage.
func openStorage(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (repository.DatasetRepository, repository.Pinger, func(), error) {
	if cfg.App.Storage == config.StorageMemory {
		repo, err := memory.NewDemoRepository(ctx, cfg.App.SeedDatasets)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info().Int("datasets", cfg.App.SeedDatasets).Msg("using in-memory catalog")
		return repo, repo, func() {}, nil
	}

	db, err := repository.New(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return postgres.NewDatasetRepository(db.Pool()), postgres.NewPinger(db.Pool()), db.Close, nil
}
