// Package metrics exposes the service's Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "giftdraw"

// Drawing outcomes recorded by RecordGeneration and RecordFinalize.
const (
	OutcomeGenerated    = "generated"
	OutcomeInsufficient = "insufficient_participants"
	OutcomeFailed       = "generation_failed"
	OutcomeFinalized    = "finalized"
	OutcomeInvalid      = "invalid_pairing"
	OutcomeSaveFailed   = "save_failed"
)

// Collector holds all Prometheus metrics for the application.
// Each Collector owns its registry, so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	Drawings           *prometheus.CounterVec
	GenerationAttempts prometheus.Histogram
	EligibleRoster     prometheus.Gauge
}

// NewCollector creates the metrics and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of RPC calls by procedure and Connect code",
			},
			[]string{"procedure", "code"},
		),
		RPCDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_duration_seconds",
				Help:      "RPC handling time in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		Drawings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "drawings_total",
				Help:      "Drawing generations and finalizations by outcome",
			},
			[]string{"outcome"},
		),
		GenerationAttempts: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_attempts",
				Help:      "Randomized passes needed per successful generation",
				Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100},
			},
		),
		EligibleRoster: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "eligible_participants",
				Help:      "Eligible participants in the most recent generation",
			},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.RPCRequests,
		c.RPCDuration,
		c.Drawings,
		c.GenerationAttempts,
		c.EligibleRoster,
	)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// RecordRPC records one finished RPC.
func (c *Collector) RecordRPC(procedure, code string, d time.Duration) {
	c.RPCRequests.WithLabelValues(procedure, code).Inc()
	c.RPCDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// RecordGeneration records a draft generation. attempts and eligible are only
// observed for successful generations.
func (c *Collector) RecordGeneration(outcome string, attempts, eligible int) {
	c.Drawings.WithLabelValues(outcome).Inc()
	c.EligibleRoster.Set(float64(eligible))
	if outcome == OutcomeGenerated {
		c.GenerationAttempts.Observe(float64(attempts))
	}
}

// RecordFinalize records a finalize call.
func (c *Collector) RecordFinalize(outcome string) {
	c.Drawings.WithLabelValues(outcome).Inc()
}
