// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Calls to Gemini, OMDb and the search scraper, by outcome
  - Recommendation pipeline counts (generated, enriched, dropped titles)
  - Platform lookup results
  - Circuit breaker state transitions

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router.

# Example

	start := time.Now()
	resp, err := client.Do(req)
	metrics.RecordUpstreamCall(metrics.UpstreamOMDb, metrics.OutcomeSuccess, time.Since(start))
*/
package metrics
