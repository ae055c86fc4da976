package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maxviazov/catalog-pagination/internal/metrics"
	"github.com/maxviazov/catalog-pagination/pkg/response"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or mints a UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one line per request; 5xx at error level, 4xx at warn.
func AccessLog(logger zerolog.Logger) gin.HandlerFunc {
	l := logger.With().Str("module", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = l.Error()
		case status >= 400:
			event = l.Warn()
		default:
			event = l.Info()
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			event = event.Str("error", errs.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("request_id", c.GetString(response.RequestIDKey)).
			Msg("request handled")
	}
}

// Instrument records request latency by matched route. A nil m is allowed.
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
