package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace prefixes every instrument name.
const Namespace = "api"

// LatencyBuckets are the request duration histogram buckets, in seconds.
var LatencyBuckets = []float64{0.1, 0.3, 0.5, 0.7, 1, 1.5, 2, 3, 5, 10}

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	requests *prom.CounterVec
	duration *prom.HistogramVec
	errors   prom.Counter
}

// NewPrometheusRecorder constructs the request instruments and registers them on reg.
// A nil reg gets a private registry. Registering twice on the same registry panics,
// matching prometheus.MustRegister.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: Namespace,
			Name:      "request_duration_seconds",
			Help:      "Request Latency",
			Buckets:   LatencyBuckets,
		}, []string{"endpoint"}),
		errors: prom.NewCounter(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total 500 errors",
		}),
	}
	reg.MustRegister(pr.requests, pr.duration, pr.errors)
	return pr
}

// RegisterRuntimeCollectors adds the Go runtime and process collectors to reg.
func RegisterRuntimeCollectors(reg *prom.Registry) {
	reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
}

func (p *PrometheusRecorder) ObserveRequestDuration(endpoint string, d time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRequest(method, endpoint, status string) {
	if p == nil || p.requests == nil {
		return
	}
	p.requests.WithLabelValues(method, endpoint, status).Inc()
}

func (p *PrometheusRecorder) IncError() {
	if p == nil || p.errors == nil {
		return
	}
	p.errors.Inc()
}

// RequestsTotal returns the api_requests_total counter vector.
func (p *PrometheusRecorder) RequestsTotal() *prom.CounterVec { return p.requests }

// ErrorsTotal returns the api_errors_total counter.
func (p *PrometheusRecorder) ErrorsTotal() prom.Counter { return p.errors }
