// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures along the recommendation pipeline.
type ErrorKind string

const (
	// KindBadRequest means a required query parameter was missing. It is the
	// only kind surfaced to the caller.
	KindBadRequest ErrorKind = "BAD_REQUEST"

	// KindGeneration means the text-generation call failed or returned nothing usable.
	KindGeneration ErrorKind = "GENERATION_ERROR"

	// KindFetch means the metadata lookup for one title failed at the network or HTTP level.
	KindFetch ErrorKind = "FETCH_ERROR"

	// KindScrape means the platform lookup for one title failed.
	KindScrape ErrorKind = "SCRAPE_ERROR"
)

// Error is a pipeline error tagged with its kind and the operation that failed.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// NewError wraps err with a kind and operation.
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
