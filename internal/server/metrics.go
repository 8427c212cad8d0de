package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records HTTP and block metrics for the store.
//
// Exposed series (prefixed with the namespace):
//   - http_request_duration_seconds{method,path,status} histogram
//   - http_requests_inflight gauge
//   - http_request_errors_total{method,path,status} counter (4xx/5xx)
//   - blocks_created_total counter
//   - blocks_cleared_total counter
type Metrics struct {
	registry *prometheus.Registry

	reqDuration   *prometheus.HistogramVec
	reqInflight   prometheus.Gauge
	reqErrors     *prometheus.CounterVec
	blocksCreated prometheus.Counter
	blocksCleared prometheus.Counter
}

// NewMetrics creates the collectors in a private registry.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "path", "status"}),
		reqInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_inflight",
			Help:      "Number of HTTP requests being served.",
		}),
		reqErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_request_errors_total",
			Help:      "Requests that finished with a 4xx or 5xx status.",
		}, []string{"method", "path", "status"}),
		blocksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_created_total",
			Help:      "Blocks stored.",
		}),
		blocksCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_cleared_total",
			Help:      "Blocks removed by clear requests.",
		}),
	}

	m.registry.MustRegister(m.reqDuration, m.reqInflight, m.reqErrors, m.blocksCreated, m.blocksCleared)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the gin middleware recording request metrics.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.reqInflight.Inc()
		c.Next()
		m.reqInflight.Dec()

		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		m.reqDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		if c.Writer.Status() >= 400 {
			m.reqErrors.WithLabelValues(method, path, status).Inc()
		}
	}
}

// Endpoint serves the registry in the Prometheus exposition format.
func (m *Metrics) Endpoint() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
