// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package recommend turns a user's mood context into enriched movie records.
//
// # Pipeline
//
//  1. Generator builds a prompt from the request and asks the text model for
//     up to MaxTitles comma-separated titles.
//  2. Engine enriches every title in parallel (bounded by Concurrency):
//     metadata first, then platforms. A title whose metadata lookup fails or
//     finds nothing is dropped; the others continue.
//  3. Records are returned in generation order.
//
// Only a generation failure is reported as an error, and callers treat it as
// an empty result. Metadata and platform failures are logged and counted.
//
// # Usage
//
//	gen := recommend.NewGenerator(geminiClient, cfg.Recommend.MaxTitles, logger)
//	engine := recommend.NewEngine(cfg.Recommend, gen, omdbClient, resolver, logger)
//	records, err := engine.Recommend(ctx, req)
package recommend
