package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/catalog-pagination/internal/metrics"
	"github.com/maxviazov/catalog-pagination/internal/service"
)

// Deps is everything the HTTP layer needs. Nil services leave their routes
// unmounted, which keeps health-only tests small.
type Deps struct {
	Pinger     Pinger
	Pagination service.PaginationService
	Datasets   service.DatasetService
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
}

// NewEngine builds a gin engine with the standard middleware chain and all routes.
func NewEngine(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(deps.Logger), Instrument(deps.Metrics))
	Register(r, deps)
	return r
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, deps Deps) {
	h := NewHealthHandler(deps.Pinger, deps.Logger)

	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		if deps.Pagination != nil {
			NewPaginationHandler(deps.Pagination).Register(api)
		}
		if deps.Datasets != nil {
			NewDatasetHandler(deps.Datasets).Register(api)
		}
	}
}
