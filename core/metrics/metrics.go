package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Guide generation modes recorded on GuidesTotal.
const (
	ModePassthrough = "passthrough"
	ModeGenerated   = "generated"
	ModeFallback    = "fallback"
)

// Illustration outcomes recorded on IllustrationsTotal.
const (
	ResultCacheHit  = "cache_hit"
	ResultGenerated = "generated"
	ResultError     = "error"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guidegen_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guidegen_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// GuidesTotal counts produced guides by generation mode.
	GuidesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guidegen_guides_total",
			Help: "Total number of guides produced, by mode",
		},
		[]string{"mode"},
	)

	// RetrievedChunks observes how many context chunks each generation used.
	RetrievedChunks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "guidegen_retrieved_chunks",
			Help:    "Context chunks retrieved per generation",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		},
	)

	// IllustrationsTotal counts step illustration attempts by result.
	IllustrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guidegen_illustrations_total",
			Help: "Total number of step illustration attempts, by result",
		},
		[]string{"result"},
	)
)

// Middleware records request counts and latency for every route. It uses the
// route pattern rather than the raw path to keep label cardinality bounded.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
