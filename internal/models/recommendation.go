// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package models

import (
	"sort"
)

// TypeSeries is the OMDb type value for episodic titles.
const TypeSeries = "series"

// RecommendationRequest carries the user's context for one recommendation call.
// All string fields are passed to the prompt verbatim.
type RecommendationRequest struct {
	DayOfWeek     string
	Mood          string
	AttentionSpan string
	SubtitlesOK   bool
}

// MovieRecord is one enriched recommendation.
//
// TotalSeasons is only set when Type is "series"; for every other type the
// field is omitted from the JSON output.
//
// Example:
//
//	{
//	  "title": "Breaking Bad",
//	  "year": "2008–2013",
//	  "plot": "A chemistry teacher diagnosed with ...",
//	  "poster": "https://m.media-amazon.com/images/...jpg",
//	  "type": "series",
//	  "runtime": "49 min",
//	  "totalSeasons": "5",
//	  "platforms": ["Netflix"]
//	}
type MovieRecord struct {
	Title        string      `json:"title"`
	Year         string      `json:"year"`
	Plot         string      `json:"plot"`
	Poster       string      `json:"poster"`
	Type         string      `json:"type"`
	Runtime      string      `json:"runtime"`
	TotalSeasons *string     `json:"totalSeasons,omitempty"`
	Platforms    PlatformSet `json:"platforms"`
}

// IsSeries reports whether the record describes a series.
func (m *MovieRecord) IsSeries() bool {
	return m.Type == TypeSeries
}

// PlatformSet is a deduplicated, sorted list of streaming platform names, or
// a single not-found label. It is never empty once resolved.
type PlatformSet []string

// NewPlatformSet deduplicates and sorts names. When names is empty the result
// is the single-element set {notFound}.
func NewPlatformSet(names []string, notFound string) PlatformSet {
	seen := make(map[string]struct{}, len(names))
	set := make(PlatformSet, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		set = append(set, n)
	}
	if len(set) == 0 {
		return PlatformSet{notFound}
	}
	sort.Strings(set)
	return set
}

// IsNotFound reports whether the set is exactly the not-found label.
func (p PlatformSet) IsNotFound(notFound string) bool {
	return len(p) == 1 && p[0] == notFound
}
