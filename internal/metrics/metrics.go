// Package metrics provides Prometheus metrics for identifier resolution
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeFound     = "found"
	OutcomeNotFound  = "not_found"
	OutcomeAmbiguous = "ambiguous"
	OutcomeError     = "error"
)

// Metrics holds all Prometheus metrics for resolution
type Metrics struct {
	LookupsTotal        *prometheus.CounterVec
	LookupDuration      prometheus.Histogram
	CandidatesPerLookup prometheus.Histogram
	BestDistance        prometheus.Histogram
	StoredItems         prometheus.Gauge
}

// New creates all metrics and registers them with reg. A nil reg registers nothing.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{}

	m.LookupsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataid_lookups_total",
			Help: "Total number of identifier lookups by outcome",
		},
		[]string{"outcome"},
	)

	m.LookupDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataid_lookup_duration_seconds",
			Help:    "Duration of identifier lookups in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	m.CandidatesPerLookup = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataid_lookup_candidates",
			Help:    "Number of identifiers matching a lookup query",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	m.BestDistance = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataid_lookup_best_distance",
			Help:    "Distance of the best candidate of successful lookups",
			Buckets: []float64{0, 1, 10, 100, 1000, 10000, 100000},
		},
	)

	m.StoredItems = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataid_container_items",
			Help: "Number of items held by the container",
		},
	)

	return m
}

// RecordLookup records a finished lookup.
func (m *Metrics) RecordLookup(outcome string, candidates int, duration time.Duration) {
	m.LookupsTotal.WithLabelValues(outcome).Inc()
	m.CandidatesPerLookup.Observe(float64(candidates))
	m.LookupDuration.Observe(duration.Seconds())
}

// RecordBest records the distance of the selected candidate.
func (m *Metrics) RecordBest(distance float64) {
	m.BestDistance.Observe(distance)
}

// SetStored updates the number of stored items.
func (m *Metrics) SetStored(n int) {
	m.StoredItems.Set(float64(n))
}
