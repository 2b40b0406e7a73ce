// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package services provides suture.Service wrappers for Moodflix components.
//
// HTTPServerService translates http.Server's blocking ListenAndServe into
// suture's context-aware Serve, shutting the server down gracefully when the
// context is canceled.
package services
