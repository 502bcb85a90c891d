package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "acadify"

var (
	requestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	apiRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	apiErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "api_errors_total",
			Help:      "Total number of API error responses",
		},
		[]string{"method", "path", "status"},
	)

	billingGeneratedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "billing_rows_generated_total",
		Help:      "Total number of billing rows created by the monthly run",
	})

	invoicesArchivedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "invoices_archived_total",
		Help:      "Total number of invoice PDFs uploaded to object storage",
	})
)

// Metrics tracks request counts, durations, and error responses. Paths are
// labeled by route template so IDs do not explode the cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		apiRequestCounter.WithLabelValues(c.Request.Method, path).Inc()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		requestDurationHistogram.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())

		if c.Writer.Status() >= 400 {
			apiErrorCounter.WithLabelValues(c.Request.Method, path, status).Inc()
		}
	}
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// RecordBillingGenerated counts rows created by the monthly billing run.
func RecordBillingGenerated(count int) {
	billingGeneratedCounter.Add(float64(count))
}

// RecordInvoiceArchived counts invoice PDFs uploaded to object storage.
func RecordInvoiceArchived() {
	invoicesArchivedCounter.Inc()
}
