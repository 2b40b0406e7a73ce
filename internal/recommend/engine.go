// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/omdb"
	"github.com/tomtom215/moodflix/internal/platforms"
)

// MetadataFetcher looks up a title's metadata. A nil record with a nil error
// is treated like not-found.
type MetadataFetcher interface {
	FetchByTitle(ctx context.Context, title string) (*models.MovieRecord, error)
}

// Engine runs the full recommendation pipeline. It is safe for concurrent use.
type Engine struct {
	generator      *Generator
	fetcher        MetadataFetcher
	resolver       platforms.Resolver
	concurrency    int
	requestTimeout time.Duration
	logger         zerolog.Logger

	requests           atomic.Int64
	generationFailures atomic.Int64
	recordsReturned    atomic.Int64
}

// Stats is a snapshot of engine counters since start.
type Stats struct {
	Requests           int64 `json:"requests"`
	GenerationFailures int64 `json:"generation_failures"`
	RecordsReturned    int64 `json:"records_returned"`
}

// NewEngine wires the pipeline stages together.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg config.RecommendConfig, generator *Generator, fetcher MetadataFetcher, resolver platforms.Resolver, logger zerolog.Logger) *Engine {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Engine{
		generator:      generator,
		fetcher:        fetcher,
		resolver:       resolver,
		concurrency:    concurrency,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger.With().Str("component", "recommend").Logger(),
	}
}

// Recommend generates titles for req and enriches each one. The returned
// slice is never nil. The error is non-nil only when generation failed, in
// which case the slice is empty.
func (e *Engine) Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.MovieRecord, error) {
	e.requests.Add(1)
	if e.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.requestTimeout)
		defer cancel()
	}
	logger := logging.WithContext(e.logger, ctx)
	start := time.Now()

	titles, err := e.generator.Generate(ctx, req)
	if err != nil {
		e.generationFailures.Add(1)
		metrics.RecommendationGenerationFailures.Inc()
		logger.Error().Str("kind", string(models.KindOf(err))).Err(err).Msg("Recommendation generation failed; returning empty recommendations")
		return []models.MovieRecord{}, err
	}

	slots := make([]*models.MovieRecord, len(titles))
	p := pool.New().WithMaxGoroutines(e.concurrency)
	for i, title := range titles {
		p.Go(func() {
			slots[i] = e.enrich(ctx, logger, title)
		})
	}
	p.Wait()

	records := make([]models.MovieRecord, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			records = append(records, *r)
		}
	}

	e.recordsReturned.Add(int64(len(records)))
	metrics.RecommendationTitlesEnriched.Add(float64(len(records)))
	logger.Info().
		Int("candidates", len(titles)).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Recommendations ready")

	return records, nil
}

// enrich fetches metadata then platforms for one title. It returns nil when
// the title should be dropped.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) enrich(ctx context.Context, logger zerolog.Logger, title string) *models.MovieRecord {
	record, err := e.fetcher.FetchByTitle(ctx, title)
	switch {
	case err == nil && record != nil:
	case err == nil, errors.Is(err, omdb.ErrNotFound):
		metrics.RecordTitleDropped("not_found")
		logger.Debug().Str("title", title).Msg("Dropping title without metadata")
		return nil
	default:
		metrics.RecordTitleDropped("fetch_error")
		logger.Warn().Str("title", title).Err(err).Msg("Dropping title after metadata failure")
		return nil
	}

	// Platforms are looked up by the generated title, not the canonical OMDb title.
	record.Platforms = e.resolver.Resolve(ctx, title)
	return record
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:           e.requests.Load(),
		GenerationFailures: e.generationFailures.Load(),
		RecordsReturned:    e.recordsReturned.Load(),
	}
}
