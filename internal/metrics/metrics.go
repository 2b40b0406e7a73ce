// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream service label values.
const (
	UpstreamGemini  = "gemini"
	UpstreamOMDb    = "omdb"
	UpstreamScraper = "scraper"
)

// Outcome label values for upstream calls.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "api_request_duration_seconds",
			Help: "API request duration in seconds",
			// Recommendation requests wait on three upstreams, so the tail is long.
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Upstream Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of calls to external services",
		},
		[]string{"upstream", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of calls to external services in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"upstream"},
	)

	// Recommendation Pipeline Metrics
	RecommendationTitlesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_titles_generated_total",
			Help: "Total number of candidate titles returned by the generator",
		},
	)

	RecommendationTitlesEnriched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_titles_enriched_total",
			Help: "Total number of candidate titles that produced a record",
		},
	)

	RecommendationTitlesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_titles_dropped_total",
			Help: "Total number of candidate titles dropped during enrichment",
		},
		[]string{"reason"}, // "not_found", "fetch_error"
	)

	RecommendationGenerationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_generation_failures_total",
			Help: "Total number of requests whose generation step failed",
		},
	)

	PlatformLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_lookups_total",
			Help: "Total number of platform lookups by result",
		},
		[]string{"result"}, // "found", "not_found", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamCall records one call to an external service
func RecordUpstreamCall(upstream, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(upstream, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(upstream).Observe(duration.Seconds())
}

// RecordTitleDropped records a candidate title that produced no record
func RecordTitleDropped(reason string) {
	RecommendationTitlesDropped.WithLabelValues(reason).Inc()
}

// RecordPlatformLookup records the result of one platform lookup
func RecordPlatformLookup(result string) {
	PlatformLookupsTotal.WithLabelValues(result).Inc()
}

// SetAppInfo publishes the running version
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
