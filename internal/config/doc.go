// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package config provides layered configuration loading for Moodflix.
//
// Configuration is built with Koanf v2 from, in increasing priority:
// struct defaults, an optional YAML file (CONFIG_PATH, ./config.yaml or
// /etc/moodflix/config.yaml) and environment variables. Only environment
// variables listed in the env mapping are read.
//
// # Required Settings
//
//   - GEMINI_API_KEY
//   - OMDB_API_KEY
//
// Load fails fast when either is missing.
//
// # Example config.yaml
//
//	gemini:
//	  model: gemini-1.5-pro
//	  timeout: 30s
//	scraper:
//	  allowed_platforms: [Netflix, Disney+, Prime Video]
//	  not_found_label: Unavailable in Indonesia
//	recommend:
//	  max_titles: 5
//	  concurrency: 5
//	security:
//	  cors_origins: [https://moodflix-tau.vercel.app]
package config
