// Package metrics exposes the storefront Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal counts HTTP requests by method, route and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal counts cart mutations by operation and result.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "result"},
	)

	// SelectionOperationsTotal counts customization session events.
	SelectionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "selection_operations_total",
			Help: "Total number of product customization operations",
		},
		[]string{"operation", "result"},
	)

	// CheckoutsTotal counts checkout attempts by outcome.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"outcome"},
	)

	// CheckoutDuration tracks how long a checkout takes end to end.
	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Checkout duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// OrderValue tracks order totals.
	OrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_value",
			Help:    "Order total including delivery fee",
			Buckets: []float64{10, 25, 50, 75, 100, 150, 250, 500},
		},
	)

	// CacheOperationsTotal counts cache operations per cache.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks the number of live entries per cache.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records a cart mutation outcome.
func RecordCartOperation(operation, result string) {
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordSelectionOperation records a customization session event.
func RecordSelectionOperation(operation, result string) {
	SelectionOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordCheckout records a checkout outcome and its duration.
func RecordCheckout(duration time.Duration, outcome string) {
	CheckoutDuration.Observe(duration.Seconds())
	CheckoutsTotal.WithLabelValues(outcome).Inc()
}

// RecordOrderValue records the total of a placed order.
func RecordOrderValue(total float64) {
	OrderValue.Observe(total)
}

// RecordCacheOperation records a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheSize sets the live entry count of a cache.
func UpdateCacheSize(cache string, size int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
}

// SetCircuitBreakerState publishes a breaker state as a number.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
