// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package main is the entry point for the Moodflix server.

Moodflix recommends movies and series from the caller's day of the week, mood,
attention span and subtitle preference. A text model proposes titles, OMDb
supplies metadata and a web search finds the streaming platforms.

# Application Architecture

	RootSupervisor ("moodflix")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON/console output
 3. Upstream clients: Gemini, OMDb, platform search, each behind a circuit breaker
 4. Recommendation engine
 5. Supervisor tree and HTTP server

# Configuration

	GEMINI_API_KEY=<key>         # required
	OMDB_API_KEY=<key>           # required
	HTTP_PORT=5000
	CORS_ORIGINS=https://moodflix-tau.vercel.app
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

See package config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and waits up to 10s for in-flight requests.

# Example Usage

	export GEMINI_API_KEY=...
	export OMDB_API_KEY=...
	./moodflix

	curl 'http://localhost:5000/get_recommendations?dayOfWeek=Friday&mood=happy&attentionSpan=short&subtitles=true'
*/
package main
