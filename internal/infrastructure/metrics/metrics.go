package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Reconciliation metrics
	RunsTotal        prometheus.Counter
	RunDuration      prometheus.Histogram
	MatchedPairs     *prometheus.CounterVec
	UnmatchedRecords *prometheus.CounterVec

	// Fuzzy matcher metrics
	FuzzyMatcherFailures prometheus.Counter

	// Benford metrics
	BenfordAnalyses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankrecon_runs_total",
			Help: "Total number of reconciliation runs",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankrecon_run_duration_seconds",
			Help:    "Duration of reconciliation runs",
			Buckets: prometheus.DefBuckets,
		}),
		MatchedPairs: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_matched_pairs_total",
				Help: "Total number of matched pairs by method",
			},
			[]string{"method"},
		),
		UnmatchedRecords: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_unmatched_records_total",
				Help: "Total number of unmatched records by side",
			},
			[]string{"side"},
		),
		FuzzyMatcherFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankrecon_fuzzy_matcher_failures_total",
			Help: "Total number of failed external fuzzy matcher calls",
		}),
		BenfordAnalyses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankrecon_benford_analyses_total",
			Help: "Total number of Benford leading-digit analyses",
		}),
	}
}
