// Package metrics exposes Prometheus instrumentation for the service.
// All collectors are registered on the default registry and served by
// the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SearchesSubmitted counts intake requests that created a new search row.
var SearchesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "painscope_searches_submitted_total",
	Help: "Total number of new searches accepted by the intake endpoint",
})

// SearchesProcessed counts finished processing attempts by outcome
// (completed, failed, retried).
var SearchesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "painscope_searches_processed_total",
	Help: "Total number of search processing attempts by outcome",
}, []string{"outcome"})

// ActiveSearches tracks searches currently being processed on this pod.
var ActiveSearches = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "painscope_active_searches",
	Help: "Number of searches currently being processed on this pod",
})

// SearchDuration observes wall-clock time from claim to terminal status.
var SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "painscope_search_duration_seconds",
	Help:    "Wall-clock duration of search processing from claim to finish",
	Buckets: []float64{5, 15, 30, 60, 120, 300, 600, 900},
})

// CacheLookups counts result cache lookups by tier (fingerprint, search_id)
// and outcome (hit, miss).
var CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "painscope_cache_lookups_total",
	Help: "Result cache lookups by tier and outcome",
}, []string{"tier", "outcome"})

// EventsPublished counts progress events persisted and broadcast,
// labelled by event type.
var EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "painscope_events_published_total",
	Help: "Progress events persisted and broadcast by event type",
}, []string{"event_type"})

// AnalyzerTokens counts tokens reported by the analysis model.
var AnalyzerTokens = promauto.NewCounter(prometheus.CounterOpts{
	Name: "painscope_analyzer_tokens_total",
	Help: "Total tokens consumed by AI analysis calls",
})

// StaleRecovered counts processing searches reset or failed by the
// recovery sweep.
var StaleRecovered = promauto.NewCounter(prometheus.CounterOpts{
	Name: "painscope_stale_recovered_total",
	Help: "Total stale processing searches transitioned by the recovery sweep",
})
