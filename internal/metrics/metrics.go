// Package metrics provides the centralized Prometheus registry for the edge model.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PicksComputedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "picks_computed_total",
		Help:      "Total number of picks produced by the edge model",
	})
	GamesExcludedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "games_excluded_total",
		Help:      "Total number of games excluded from the model, by reason",
	}, []string{"reason"})
	APIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "api_requests_total",
		Help:      "Total number of upstream API requests, by provider and outcome",
	}, []string{"provider", "outcome"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "cache_hits_total",
		Help:      "Total number of snapshot cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "cache_misses_total",
		Help:      "Total number of snapshot cache misses",
	})
	SnapshotRefreshesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "snapshot_refreshes_total",
		Help:      "Total number of scheduled snapshot refreshes, by outcome",
	}, []string{"outcome"})
)

// Gauge metrics
var (
	PicksByTier = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "picks_by_tier",
		Help:      "Pick counts from the most recent run, by tier",
	}, []string{"tier"})
	LastRunGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "last_run_games",
		Help:      "Number of games processed in the most recent run",
	})
	LastRunWeek = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "last_run_week",
		Help:      "Display week of the most recent run",
	})
)

// Histogram metrics
var (
	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "run_duration_seconds",
		Help:      "Duration of weekly pipeline runs in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	APIRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "api_request_duration_seconds",
		Help:      "Duration of upstream API requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PicksComputedTotal)
		registry.MustRegister(GamesExcludedTotal)
		registry.MustRegister(APIRequestsTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)
		registry.MustRegister(SnapshotRefreshesTotal)

		registry.MustRegister(PicksByTier)
		registry.MustRegister(LastRunGames)
		registry.MustRegister(LastRunWeek)

		registry.MustRegister(RunDuration)
		registry.MustRegister(APIRequestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPick records a computed pick.
func RecordPick() {
	PicksComputedTotal.Inc()
}

// RecordGameExcluded records a model exclusion by reason.
func RecordGameExcluded(reason string) {
	GamesExcludedTotal.WithLabelValues(reason).Inc()
}

// RecordAPIRequest records an upstream request with its duration.
func RecordAPIRequest(provider, outcome string, durationSeconds float64) {
	APIRequestsTotal.WithLabelValues(provider, outcome).Inc()
	APIRequestDuration.WithLabelValues(provider).Observe(durationSeconds)
}

// RecordCacheHit records a snapshot cache hit.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a snapshot cache miss.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordSnapshotRefresh records a scheduled refresh outcome.
func RecordSnapshotRefresh(outcome string) {
	SnapshotRefreshesTotal.WithLabelValues(outcome).Inc()
}

// RecordRunDuration records the duration of a weekly pipeline run.
func RecordRunDuration(durationSeconds float64) {
	RunDuration.Observe(durationSeconds)
}

// UpdateTierCounts updates the per-tier pick gauges from a completed run.
func UpdateTierCounts(counts map[string]int) {
	for tier, count := range counts {
		PicksByTier.WithLabelValues(tier).Set(float64(count))
	}
}

// UpdateLastRun updates the most-recent-run gauges.
func UpdateLastRun(week, games int) {
	LastRunWeek.Set(float64(week))
	LastRunGames.Set(float64(games))
}
