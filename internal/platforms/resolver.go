// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package platforms resolves which streaming platforms carry a title.
//
// The only implementation scrapes a search-engine results page and keeps the
// text of elements carrying a configured CSS class when it matches an
// allow-list of platform names. The lookup is best effort: every failure
// degrades to the configured not-found label and is never returned to the
// caller. The markup assumption (the class name) lives in configuration so it
// can be changed without touching code when the results page changes.
package platforms

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/breaker"
	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/models"
)

// maxPageSize bounds how much of a results page is read.
const maxPageSize = 4 << 20

// Resolver looks up streaming platforms for a title.
type Resolver interface {
	// Resolve never fails: an empty or failed lookup yields the not-found set.
	Resolve(ctx context.Context, title string) models.PlatformSet
}

// SearchResolver scrapes a search-results page for platform names.
type SearchResolver struct {
	baseURL       string
	userAgent     string
	queryTemplate string
	selector      string
	allowed       map[string]bool
	notFound      string
	httpClient    *http.Client
	breaker       *breaker.Breaker[[]byte]
	logger        zerolog.Logger
}

var _ Resolver = (*SearchResolver)(nil)

// Option customises a SearchResolver.
type Option func(*SearchResolver)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(r *SearchResolver) {
		r.httpClient = hc
	}
}

// NewSearchResolver creates a resolver from scraper configuration.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSearchResolver(cfg config.ScraperConfig, breakerCfg config.BreakerConfig, logger zerolog.Logger, opts ...Option) *SearchResolver {
	logger = logger.With().Str("component", "platforms").Logger()
	r := &SearchResolver{
		baseURL:       cfg.BaseURL,
		userAgent:     cfg.UserAgent,
		queryTemplate: cfg.QueryTemplate,
		selector:      "span." + strings.TrimSpace(cfg.PlatformClass),
		allowed:       allowSet(cfg.AllowedPlatforms),
		notFound:      cfg.NotFoundLabel,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		breaker:       breaker.New[[]byte]("search-scraper", breakerCfg, logger),
		logger:        logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NotFoundLabel returns the sentinel used when no platform is found.
func (r *SearchResolver) NotFoundLabel() string {
	return r.notFound
}

// Resolve returns the allow-listed platforms found for title.
func (r *SearchResolver) Resolve(ctx context.Context, title string) models.PlatformSet {
	logger := logging.WithContext(r.logger, ctx)

	start := time.Now()
	page, err := r.breaker.Execute(func() ([]byte, error) {
		return r.fetchPage(ctx, title)
	})
	if err != nil {
		metrics.RecordUpstreamCall(metrics.UpstreamScraper, metrics.OutcomeError, time.Since(start))
		metrics.RecordPlatformLookup("error")
		scrapeErr := models.NewError(models.KindScrape, "platforms.Resolve", err)
		logger.Warn().Str("title", title).Err(scrapeErr).Msg("Platform lookup failed")
		return models.NewPlatformSet(nil, r.notFound)
	}

	names, err := ExtractPlatforms(bytes.NewReader(page), r.selector, r.allowed)
	if err != nil {
		metrics.RecordUpstreamCall(metrics.UpstreamScraper, metrics.OutcomeError, time.Since(start))
		metrics.RecordPlatformLookup("error")
		logger.Warn().Str("title", title).Err(models.NewError(models.KindScrape, "platforms.parse", err)).Msg("Platform page unparseable")
		return models.NewPlatformSet(nil, r.notFound)
	}

	set := models.NewPlatformSet(names, r.notFound)
	if set.IsNotFound(r.notFound) {
		metrics.RecordUpstreamCall(metrics.UpstreamScraper, metrics.OutcomeNotFound, time.Since(start))
		metrics.RecordPlatformLookup("not_found")
	} else {
		metrics.RecordUpstreamCall(metrics.UpstreamScraper, metrics.OutcomeSuccess, time.Since(start))
		metrics.RecordPlatformLookup("found")
	}

	logger.Debug().Str("title", title).Strs("platforms", set).Msg("Resolved platforms")
	return set
}

func (r *SearchResolver) fetchPage(ctx context.Context, title string) ([]byte, error) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("q", fmt.Sprintf(r.queryTemplate, title))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(page) == 0 {
		return nil, errors.New("empty body")
	}
	return page, nil
}

// ExtractPlatforms parses an HTML page and returns, in document order, the
// texts of elements matching selector that are allow-listed. Surrounding
// whitespace is ignored, otherwise a text must equal an allow-list entry
// exactly. Duplicates are kept.
func ExtractPlatforms(page io.Reader, selector string, allowed map[string]bool) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, err
	}

	var names []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if name := strings.TrimSpace(s.Text()); allowed[name] {
			names = append(names, name)
		}
	})
	return names, nil
}

// allowSet indexes the non-empty allow-list entries.
func allowSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out[n] = true
		}
	}
	return out
}

// BreakerState reports the circuit breaker state for health checks.
func (r *SearchResolver) BreakerState() string {
	return r.breaker.State()
}
