// Package metrics exposes Prometheus counters for the registration pipeline
// and a generic HTTP request histogram.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	geocodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_requests_total",
			Help: "Geocoding lookups by outcome (sucesso, nao_encontrada, erro, cache).",
		},
		[]string{"resultado"},
	)
	registosTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registos_produtores_total",
			Help: "Producer registrations by outcome.",
		},
		[]string{"resultado"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(geocodeTotal)
	prometheus.MustRegister(registosTotal)
}

// GeocodeResult counts one geocoding lookup outcome.
func GeocodeResult(resultado string) {
	geocodeTotal.WithLabelValues(resultado).Inc()
}

// RegistoResult counts one registration outcome.
func RegistoResult(resultado string) {
	registosTotal.WithLabelValues(resultado).Inc()
}

// Middleware records per-request counters and latency, labelled by route
// template (not raw path) to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
