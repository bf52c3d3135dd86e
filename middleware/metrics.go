package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "academy_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "path"},
	)

	// CatalogQueryResults ghi số kết quả của mỗi lần truy vấn catalog
	CatalogQueryResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "academy_catalog_query_results",
			Help:    "Number of resources returned by a catalog query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	// GuardDecisions đếm quyết định của route guard theo loại
	GuardDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_route_guard_decisions_total",
			Help: "Route guard decisions by kind",
		},
		[]string{"kind"},
	)
)

// Metrics ghi số request và độ trễ theo route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
