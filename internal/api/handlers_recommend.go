// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"net/http"
)

// GetRecommendations handles GET /get_recommendations.
//
// A generation failure is answered with an empty array; the engine has
// already logged it. Only malformed requests produce an error status.
//
// @Summary Get mood based recommendations
// @Description Asks the text model for up to five titles matching the caller's day, mood, attention span and subtitle preference, enriches each with OMDb metadata and streaming platforms, and returns them in generation order.
// @Tags Recommendations
// @Produce json
// @Param dayOfWeek query string true "Day of the week, e.g. Friday"
// @Param mood query string true "Current mood, e.g. happy"
// @Param attentionSpan query string true "Attention span, e.g. short"
// @Param subtitles query string true "true if subtitles are acceptable; any other value means no"
// @Success 200 {array} models.MovieRecord "Recommendations (possibly empty)"
// @Failure 400 {object} models.APIResponse "Missing or blank query parameter"
// @Router /get_recommendations [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	req := parseRecommendationsRequest(r.URL.Query())
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	records, err := h.engine.Recommend(r.Context(), req.ToModel())
	if err != nil {
		records = nil
	}

	respondRecords(w, records)
}
