// Package metrics exposes Prometheus instrumentation for the generation
// pipeline. All recording methods are nil-safe so callers never need to
// guard against a disabled metrics system.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline instrument set backed by a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal     *prometheus.CounterVec
	phaseDuration *prometheus.HistogramVec
	llmCalls      *prometheus.CounterVec
	llmRetries    prometheus.Counter
	cacheEvents   *prometheus.CounterVec
}

// New constructs a Metrics with its own registry, including the standard Go
// and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bellman",
			Name:      "pipeline_runs_total",
			Help:      "Generation runs by pipeline and outcome.",
		}, []string{"pipeline", "outcome"}),
		phaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bellman",
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock duration of pipeline phases.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"phase"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bellman",
			Name:      "llm_calls_total",
			Help:      "Model calls by outcome.",
		}, []string{"outcome"}),
		llmRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bellman",
			Name:      "llm_retries_total",
			Help:      "Model call retries after transient failures.",
		}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bellman",
			Name:      "cache_events_total",
			Help:      "Result cache lookups by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(m.runsTotal, m.phaseDuration, m.llmCalls, m.llmRetries, m.cacheEvents)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRun counts a completed pipeline run.
func (m *Metrics) RecordRun(pipeline, outcome string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(pipeline, outcome).Inc()
}

// RecordPhase observes a phase duration in seconds.
func (m *Metrics) RecordPhase(phase string, seconds float64) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Observe(seconds)
}

// RecordLLMCall counts a model call by outcome ("success" or "error").
func (m *Metrics) RecordLLMCall(outcome string) {
	if m == nil {
		return
	}
	m.llmCalls.WithLabelValues(outcome).Inc()
}

// RecordLLMRetry counts a retry after a transient model failure.
func (m *Metrics) RecordLLMRetry() {
	if m == nil {
		return
	}
	m.llmRetries.Inc()
}

// RecordCache counts a cache lookup by outcome ("hit" or "miss").
func (m *Metrics) RecordCache(outcome string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(outcome).Inc()
}
