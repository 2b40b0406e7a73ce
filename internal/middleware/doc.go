// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package middleware provides HTTP middleware shared by the API router.
//
//   - RequestID: assigns X-Request-ID and seeds logging context
//   - PrometheusMetrics: request count, latency and in-flight gauge
//   - AccessLog: one structured zerolog line per request
//
// All middleware use the standard func(http.Handler) http.Handler shape so
// they compose with chi's Use.
package middleware
