// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package breaker wraps sony/gobreaker with Prometheus metrics and zerolog
// logging for the upstream clients (Gemini, OMDb, search scraper).
//
// The breaker uses real time for its interval and timeout. Tests exercise it
// with small thresholds rather than mocking the clock.
package breaker

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/metrics"
)

// Breaker guards calls to one upstream service.
type Breaker[T any] struct {
	cb      *gobreaker.CircuitBreaker[T]
	name    string
	enabled bool
}

// Option customises a Breaker.
type Option func(*options)

type options struct {
	ignore func(error) bool
}

// WithIgnoredErrors marks errors that are expected outcomes (e.g. a title that
// does not exist) so they do not count against the upstream's health.
func WithIgnoredErrors(ignore func(error) bool) Option {
	return func(o *options) {
		o.ignore = ignore
	}
}

// New creates a breaker named after the upstream it protects.
//
// Defaults from config:
// - MaxRequests concurrent probes in half-open state
// - Interval measurement window while closed
// - Timeout before an open breaker half-opens
// - Opens once MinRequests were seen and the failure ratio reaches FailureRatio
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New[T any](name string, cfg config.BreakerConfig, logger zerolog.Logger, opts ...Option) *Breaker[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger = logger.With().Str("breaker", name).Logger()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return o.ignore != nil && o.ignore(err)
		},
	})

	return &Breaker[T]{cb: cb, name: name, enabled: cfg.Enabled}
}

// Execute runs fn under breaker protection. When the breaker is disabled fn
// runs directly. A rejected call returns gobreaker.ErrOpenState or
// gobreaker.ErrTooManyRequests; see IsRejected.
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	if !b.enabled {
		return fn()
	}

	result, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	case IsRejected(err):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
	}
	return result, err
}

// Name returns the breaker name.
func (b *Breaker[T]) Name() string {
	return b.name
}

// State returns "closed", "half-open", "open", or "disabled".
func (b *Breaker[T]) State() string {
	if !b.enabled {
		return "disabled"
	}
	return stateToString(b.cb.State())
}

// IsRejected reports whether err came from the breaker refusing a call.
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
