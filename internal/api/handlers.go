// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moodflix/internal/models"
)

// Recommender produces recommendations for a request.
type Recommender interface {
	Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.MovieRecord, error)
}

// BreakerReporter reports the state of an upstream circuit breaker
// ("closed", "half-open", "open" or "disabled").
type BreakerReporter interface {
	BreakerState() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommendation endpoint
//   - handlers_health.go: health and probe endpoints
//   - handlers_helpers.go: response helpers
type Handler struct {
	engine    Recommender
	upstreams map[string]BreakerReporter
	required  map[string]bool
	version   string
	startTime time.Time
}

// NewHandler creates a handler. upstreams maps an upstream name (gemini,
// omdb, scraper) to its breaker and may be nil. Every upstream is reported by
// the health endpoint; only those named in required gate readiness, so a
// best-effort upstream with an open breaker leaves the service ready.
func NewHandler(engine Recommender, version string, upstreams map[string]BreakerReporter, required ...string) *Handler {
	if upstreams == nil {
		upstreams = map[string]BreakerReporter{}
	}
	req := make(map[string]bool, len(required))
	for _, name := range required {
		req[name] = true
	}
	return &Handler{
		engine:    engine,
		upstreams: upstreams,
		required:  req,
		version:   version,
		startTime: time.Now(),
	}
}
