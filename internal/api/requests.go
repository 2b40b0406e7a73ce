// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"net/url"
	"strings"

	"github.com/tomtom215/moodflix/internal/models"
)

// RecommendationsRequest holds the query parameters of GET /get_recommendations.
// Values are kept verbatim apart from the required checks.
type RecommendationsRequest struct {
	DayOfWeek     string `query:"dayOfWeek" validate:"required,notblank,max=64"`
	Mood          string `query:"mood" validate:"required,notblank,max=256"`
	AttentionSpan string `query:"attentionSpan" validate:"required,notblank,max=64"`
	Subtitles     string `query:"subtitles" validate:"required,notblank"`
}

// parseRecommendationsRequest reads the request from query values.
func parseRecommendationsRequest(q url.Values) RecommendationsRequest {
	return RecommendationsRequest{
		DayOfWeek:     q.Get("dayOfWeek"),
		Mood:          q.Get("mood"),
		AttentionSpan: q.Get("attentionSpan"),
		Subtitles:     q.Get("subtitles"),
	}
}

// ToModel converts the validated parameters. Subtitles are accepted only for
// a case-insensitive "true"; any other value means no subtitles.
func (r *RecommendationsRequest) ToModel() models.RecommendationRequest {
	return models.RecommendationRequest{
		DayOfWeek:     r.DayOfWeek,
		Mood:          r.Mood,
		AttentionSpan: r.AttentionSpan,
		SubtitlesOK:   strings.EqualFold(r.Subtitles, "true"),
	}
}
