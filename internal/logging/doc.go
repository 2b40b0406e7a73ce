// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package logging provides centralized zerolog-based structured logging for Moodflix.
//
// JSON output is used in production and console output during development.
// Request and correlation IDs travel on the context and are attached to every
// line written through Ctx.
//
// # Quick Start
//
//	import "github.com/tomtom215/moodflix/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Str("title", title).Msg("Metadata not found")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Suture Integration
//
// NewSlogLogger returns a *slog.Logger backed by zerolog so that the
// sutureslog event hook writes through the same pipeline.
package logging
