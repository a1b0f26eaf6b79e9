package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry HTTP 层指标集合，挂在 /metrics 暴露
type Registry struct {
	reg          *prometheus.Registry
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewRegistry 创建并注册指标
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ixp_http_requests_total",
	}, []string{"method", "path", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ixp_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	r.MustRegister(requests, duration)
	return &Registry{
		reg:          r,
		HTTPRequests: requests,
		HTTPDuration: duration,
	}
}

// ObserveRequest 记录一次请求
func (r *Registry) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.HTTPDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler 暴露 /metrics 的 HTTP handler
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
