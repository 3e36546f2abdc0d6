package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pylearn_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pylearn_http_request_duration_seconds",
			Help: "Duration of HTTP requests",
			// Assistant-backed endpoints block on run polling, so the
			// buckets reach well past the default upper bound.
			Buckets: []float64{0.05, 0.25, 1, 5, 15, 30, 60, 120},
		},
		[]string{"method", "endpoint"},
	)

	// AssistantRunOutcomes counts each assistant run once, at its terminal
	// outcome, which makes failing or stuck upstream runs visible.
	AssistantRunOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pylearn_assistant_runs_total",
			Help: "Assistant runs grouped by terminal outcome",
		},
		[]string{"outcome"},
	)
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		requestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		requestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
