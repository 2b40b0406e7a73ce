// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package omdb fetches title metadata from the OMDb API.
//
// A lookup has three outcomes:
//   - a MovieRecord (without platforms) when OMDb reports Response "True"
//   - ErrNotFound when OMDb answers but does not know the title
//   - a FETCH_ERROR *models.Error for transport, HTTP or decoding failures
package omdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/breaker"
	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/models"
)

// ErrNotFound is returned when OMDb has no entry for the requested title.
var ErrNotFound = errors.New("omdb: title not found")

// titleResponse is the subset of the OMDb ?t= response that is mapped onto a record.
type titleResponse struct {
	Response     string `json:"Response"`
	Error        string `json:"Error"`
	Title        string `json:"Title"`
	Year         string `json:"Year"`
	Plot         string `json:"Plot"`
	Poster       string `json:"Poster"`
	Type         string `json:"Type"`
	Runtime      string `json:"Runtime"`
	TotalSeasons string `json:"totalSeasons"`
}

// Client looks up titles on OMDb.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *breaker.Breaker[*models.MovieRecord]
	logger     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates an OMDb client. Not-found answers do not count as
// breaker failures.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewClient(cfg config.OMDbConfig, breakerCfg config.BreakerConfig, logger zerolog.Logger, opts ...Option) *Client {
	logger = logger.With().Str("component", "omdb").Logger()
	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker: breaker.New[*models.MovieRecord]("omdb-api", breakerCfg, logger,
			breaker.WithIgnoredErrors(func(err error) bool { return errors.Is(err, ErrNotFound) })),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchByTitle looks up a title by exact name. The returned record has no
// platforms set.
func (c *Client) FetchByTitle(ctx context.Context, title string) (*models.MovieRecord, error) {
	start := time.Now()
	record, err := c.breaker.Execute(func() (*models.MovieRecord, error) {
		return c.fetch(ctx, title)
	})

	logger := logging.WithContext(c.logger, ctx)
	switch {
	case err == nil:
		metrics.RecordUpstreamCall(metrics.UpstreamOMDb, metrics.OutcomeSuccess, time.Since(start))
		return record, nil
	case errors.Is(err, ErrNotFound):
		metrics.RecordUpstreamCall(metrics.UpstreamOMDb, metrics.OutcomeNotFound, time.Since(start))
		logger.Warn().Str("title", title).Err(err).Msg("Title not found on OMDb")
		return nil, err
	default:
		metrics.RecordUpstreamCall(metrics.UpstreamOMDb, metrics.OutcomeError, time.Since(start))
		if !models.IsKind(err, models.KindFetch) {
			err = models.NewError(models.KindFetch, "omdb.FetchByTitle", err)
		}
		logger.Error().Str("title", title).Err(err).Msg("OMDb lookup failed")
		return nil, err
	}
}

func (c *Client) fetch(ctx context.Context, title string) (*models.MovieRecord, error) {
	endpoint, err := c.titleURL(title)
	if err != nil {
		return nil, models.NewError(models.KindFetch, "omdb.buildURL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, models.NewError(models.KindFetch, "omdb.newRequest", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL including the API key.
		return nil, models.NewError(models.KindFetch, "omdb.do", redact(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, models.NewError(models.KindFetch, "omdb.status", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body titleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, models.NewError(models.KindFetch, "omdb.decode", err)
	}

	if body.Response != "True" {
		if body.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, body.Error)
		}
		return nil, ErrNotFound
	}

	return toRecord(&body), nil
}

func (c *Client) titleURL(title string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("t", title)
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// toRecord maps an OMDb response onto a record. totalSeasons is carried only
// for series.
func toRecord(body *titleResponse) *models.MovieRecord {
	record := &models.MovieRecord{
		Title:   body.Title,
		Year:    body.Year,
		Plot:    body.Plot,
		Poster:  body.Poster,
		Type:    body.Type,
		Runtime: body.Runtime,
	}
	if record.IsSeries() {
		seasons := body.TotalSeasons
		record.TotalSeasons = &seasons
	}
	return record
}

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(msg, secret, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// BreakerState reports the circuit breaker state for health checks.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}
