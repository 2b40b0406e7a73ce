// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package models defines the data structures shared across Moodflix.

Key Components:

  - RecommendationRequest: the user's day, mood, attention span and subtitle preference
  - MovieRecord: one enriched recommendation as returned to the client
  - PlatformSet: allow-listed streaming platforms, or the not-found sentinel
  - APIResponse / APIError: the envelope used for health and error responses
  - Error / ErrorKind: the pipeline error taxonomy

The recommendation endpoint returns a bare JSON array of MovieRecord values.
The envelope types are only used for non-array responses.
*/
package models
