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
	requestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mockai_http_requests_total",
		Help: "Total number of requests received",
	}, []string{"method", "path", "status"})

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mockai_http_request_duration_ms",
		Help:    "Duration of HTTP requests in ms",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 2, 5, 10, 15, 20, 50, 100, 200, 500, 1000, 2000, 5000},
	}, []string{"method", "path", "status"})

	payloadSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mockai_http_request_size_bytes",
		Help:    "Size of HTTP requests in bytes",
		Buckets: []float64{200, 500, 1000, 2000, 5000, 10000, 50000, 100000, 500000, 1000000, 5000000, 10000000},
	}, []string{"method", "path", "status"})
)

// Metrics instruments every request with the counters the original MockAI
// deployment dashboards scrape.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		requestCounter.WithLabelValues(method, path, status).Inc()
		requestLatency.WithLabelValues(method, path, status).Observe(float64(time.Since(start).Milliseconds()))
		if c.Request.ContentLength > 0 {
			payloadSize.WithLabelValues(method, path, status).Observe(float64(c.Request.ContentLength))
		}
	}
}

// MetricsHandler exposes the Prometheus registry.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
