// Package metrics holds the prometheus collectors that the aggregator
// package increments and observes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProducerCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregator_producer_calls_total",
		Help: "Total number of fare-quote producer invocations, by platform and outcome.",
	}, []string{"platform", "outcome"})

	ProducerDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aggregator_producer_duration_seconds",
		Help:    "Latency of a single fare-quote producer call.",
		Buckets: prometheus.DefBuckets,
	}, []string{"platform"})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aggregator_cache_hits_total",
		Help: "Total number of compare-fares requests served from the coordinate-keyed cache.",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aggregator_cache_misses_total",
		Help: "Total number of compare-fares requests that fanned out to producers.",
	})
)
