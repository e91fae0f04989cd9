package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "intent_gateway"

// Dispatch outcomes
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidInput   = "invalid_input"
	OutcomeModelError     = "model_error"
	OutcomeParseError     = "parse_error"
	OutcomeUnknownIntent  = "unknown_intent"
	OutcomeDownstreamFail = "downstream_error"
)

// Intent label values that are not registered intent names.
const (
	IntentNone    = "none"
	IntentUnknown = "unknown"
)

// Metrics holds the gateway collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	modelDuration    *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	rateLimited      prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		dispatchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Dispatched queries by intent and outcome.",
		}, []string{"intent", "outcome"}),
		dispatchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "End-to-end dispatch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		modelDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_call_duration_seconds",
			Help:      "Language model call latency.",
			Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32},
		}, []string{"outcome"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		rateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveDispatch(intentName, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	if intentName == "" {
		intentName = IntentNone
	}
	m.dispatchTotal.WithLabelValues(intentName, outcome).Inc()
	m.dispatchDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) ObserveModelCall(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.modelDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) ObserveHTTP(route, method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}
