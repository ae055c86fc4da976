package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// readinessTimeout bounds the storage ping so a stuck pool fails the probe
// instead of hanging it.
const readinessTimeout = 2 * time.Second

// Pinger is what readiness needs from the catalog storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage Pinger
	log     zerolog.Logger
}

func NewHealthHandler(storage Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		log:     logger.With().Str("module", "http").Str("component", "health").Logger(),
	}
}

// Liveness only says the process serves HTTP.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness pings the catalog storage. Without storage there is nothing to
// wait for and the probe passes.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": gin.H{"storage": "skipped"}})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()
	if err := h.storage.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("storage not ready")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": gin.H{"storage": "down"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": gin.H{"storage": "ok"}})
}
