package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	ordersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		},
	)

	ordersSplitTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_split_total",
			Help: "Total number of order splits",
		},
		[]string{"mode"}, // BY_ITEM, BY_AMOUNT
	)

	tablesMergedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tables_merged_total",
			Help: "Total number of table merges",
		},
	)

	paymentsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Total number of payments processed",
		},
		[]string{"status"}, // success, failed
	)

	refundsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refunds_processed_total",
			Help: "Total number of refunds processed",
		},
		[]string{"status"}, // success, failed
	)
)

// PrometheusMiddleware records HTTP request metrics
func PrometheusMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" || path == "/ready" {
			ctx.Next()
			return
		}

		// Empty template path means 404, fall back to the raw path.
		if path == "" {
			path = ctx.Request.URL.Path
		}

		httpRequestsInFlight.Inc()
		start := time.Now()

		ctx.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration)
	}
}

// MetricsHandler returns the Prometheus scrape handler
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// UpdateDBMetrics updates the connection pool gauges, called periodically
func UpdateDBMetrics(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}

// RecordOrderCreated counts a created order
func RecordOrderCreated() {
	ordersCreatedTotal.Inc()
}

// RecordOrderSplit counts an order split by mode
func RecordOrderSplit(mode string) {
	ordersSplitTotal.WithLabelValues(mode).Inc()
}

// RecordTablesMerged counts a table merge
func RecordTablesMerged() {
	tablesMergedTotal.Inc()
}

// RecordPaymentProcessed counts a payment attempt
func RecordPaymentProcessed(success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	paymentsProcessedTotal.WithLabelValues(status).Inc()
}

// RecordRefundProcessed counts a refund attempt
func RecordRefundProcessed(success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	refundsProcessedTotal.WithLabelValues(status).Inc()
}
