// Package metrics provides Prometheus metrics collection for the checkout service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CheckoutCalculationsTotal counts pricing requests by outcome.
	CheckoutCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_calculations_total",
			Help: "Total number of checkout calculations",
		},
		[]string{"status"},
	)

	// CheckoutCalculationDuration tracks pricing duration.
	CheckoutCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_calculation_duration_seconds",
			Help:    "Checkout calculation duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// CheckoutItemsTotal counts priced units per item.
	CheckoutItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_items_total",
			Help: "Total number of priced units by item",
		},
		[]string{"item"},
	)

	// HistorySessions tracks sessions currently holding calculation history.
	HistorySessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "history_sessions",
			Help: "Number of sessions with calculation history",
		},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// UnmatchedPath is the path label of requests that match no route, so
// scans of random URLs cannot grow the label set.
const UnmatchedPath = "unmatched"

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = UnmatchedPath
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCalculation records metrics for one checkout calculation.
func RecordCalculation(duration time.Duration, status string) {
	CheckoutCalculationDuration.Observe(duration.Seconds())
	CheckoutCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordItems adds priced unit counts keyed by item identifier.
func RecordItems(counts map[string]int) {
	for item, n := range counts {
		if n > 0 {
			CheckoutItemsTotal.WithLabelValues(item).Add(float64(n))
		}
	}
}

// SetHistorySessions updates the history session gauge.
func SetHistorySessions(n int) {
	HistorySessions.Set(float64(n))
}

// SetCircuitBreakerState updates the breaker state gauge for name.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
