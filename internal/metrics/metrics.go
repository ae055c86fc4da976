// Package metrics exposes Prometheus instruments on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maxviazov/catalog-pagination/internal/pagination"
)

const namespace = "catalog"

type Metrics struct {
	registry    *prometheus.Registry
	pageBars    *prometheus.CounterVec
	barTokens   prometheus.Histogram
	httpLatency *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		pageBars: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pagination",
			Name:      "bars_generated_total",
			Help:      "Pagination bars generated, by zone of the current page.",
		}, []string{"zone"}),
		barTokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pagination",
			Name:      "bar_tokens",
			Help:      "Number of tokens in a generated pagination bar.",
			Buckets:   prometheus.LinearBuckets(1, 2, 8),
		}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.pageBars,
		m.barTokens,
		m.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordPagination counts one generated bar. Nil receivers are a no-op so
// callers can run without metrics.
func (m *Metrics) RecordPagination(zone pagination.Zone, tokens int) {
	if m == nil {
		return
	}
	m.pageBars.WithLabelValues(zone.String()).Inc()
	m.barTokens.Observe(float64(tokens))
}

func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.httpLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
