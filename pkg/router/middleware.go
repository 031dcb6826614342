package router

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
)

// BaseURL stores the public API URL in the context so that
// controllers can build resource links.
func BaseURL(apiURL *url.URL) gin.HandlerFunc {
	base := apiURL.String()
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), base)
		c.Next()
	}
}

// unmatchedRoute is the route label for requests that no handler matched.
// Using the raw path would allow callers to create arbitrary series.
const unmatchedRoute = "unmatched"

// requestMetrics records the count and latency of handled requests.
type requestMetrics struct {
	count    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newRequestMetrics() *requestMetrics {
	labels := []string{"code", "method", "route"}

	return &requestMetrics{
		count: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "requests_total",
			Help: "How many HTTP requests processed, partitioned by status code, HTTP method and route.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "The HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

func (m *requestMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.count, m.duration}
}

// register adds the collectors to the registerer. Collectors registered
// before an error are removed again.
func (m *requestMetrics) register(r prometheus.Registerer) error {
	var registered []prometheus.Collector
	for _, c := range m.collectors() {
		if err := r.Register(c); err != nil {
			for _, done := range registered {
				r.Unregister(done)
			}
			return errors.Join(errors.New("could not register request metrics"), err)
		}
		registered = append(registered, c)
	}

	return nil
}

func (m *requestMetrics) unregister(r prometheus.Registerer) {
	for _, c := range m.collectors() {
		r.Unregister(c)
	}
}

// middleware observes every request. The route label is the route
// template, e.g. /api/app/budgets/:id, which keeps the cardinality low.
func (m *requestMetrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		code := strconv.Itoa(c.Writer.Status())
		m.duration.WithLabelValues(code, c.Request.Method, route).Observe(time.Since(start).Seconds())
		m.count.WithLabelValues(code, c.Request.Method, route).Inc()
	}
}
