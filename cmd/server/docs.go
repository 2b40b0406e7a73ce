// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package main provides the Moodflix HTTP server
//
// @title Moodflix API
// @version 1.0
// @description Mood based movie and series recommendations enriched with OMDb metadata and streaming platforms.
// @description
// @description ## Error Responses
// @description
// @description Malformed requests return:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "BAD_REQUEST", "message": "mood is required"},
// @description   "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
// @description }
// @description ```
// @description Upstream failures never surface as errors; the recommendation list is just shorter or empty.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/moodflix/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Mood based recommendations
//
// @tag.name Health
// @tag.description Health and probe endpoints
package main
