// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package api provides the HTTP layer for Moodflix.

Endpoints:

  - GET /get_recommendations: mood based recommendations as a JSON array
  - GET /api/v1/health: overall status with upstream circuit breaker states
  - GET /api/v1/health/live: liveness probe
  - GET /api/v1/health/ready: readiness probe (503 while any breaker is open)
  - GET /metrics: Prometheus metrics
  - GET /swagger/*: generated API documentation

Middleware Stack (in order):

  - RequestID: X-Request-ID header plus request and correlation IDs for logging
  - RealIP: X-Forwarded-For / X-Real-IP handling
  - Recoverer: panics become a 500
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, duration and in-flight gauge
  - CORS: go-chi/cors restricted to the configured origins, GET and OPTIONS

Response Format:

The recommendation endpoint returns a bare array, never null:

	[
	  {"title": "Inception", "year": "2010", "type": "movie", "platforms": ["Netflix"], ...}
	]

Every other response, including errors, uses the envelope:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "request_id": "..."},
	  "error": {"code": "BAD_REQUEST", "message": "mood is required"}
	}

Usage:

	handler := api.NewHandler(engine, version, upstreams, "gemini")
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security.CORSOrigins))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
