// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	_ "github.com/tomtom215/moodflix/docs" // Import generated swagger docs
	"github.com/tomtom215/moodflix/internal/api"
	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/gemini"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/omdb"
	"github.com/tomtom215/moodflix/internal/platforms"
	"github.com/tomtom215/moodflix/internal/recommend"
	"github.com/tomtom215/moodflix/internal/supervisor"
	"github.com/tomtom215/moodflix/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("model", cfg.Gemini.Model).
		Int("max_titles", cfg.Recommend.MaxTitles).
		Int("concurrency", cfg.Recommend.Concurrency).
		Strs("cors_origins", cfg.Security.CORSOrigins).
		Bool("circuit_breaker", cfg.Breaker.Enabled).
		Msg("Starting Moodflix")

	if slices.Contains(cfg.Security.CORSOrigins, "*") {
		logging.Warn().Msg("CORS is configured with a wildcard origin; restrict CORS_ORIGINS before deploying")
	}

	handler := buildHandler(cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security.CORSOrigins))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.Component("http")))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildHandler wires the upstream clients into the recommendation pipeline.
func buildHandler(cfg *config.Config) *api.Handler {
	geminiClient := gemini.NewClient(cfg.Gemini, cfg.Breaker, logging.Logger())
	omdbClient := omdb.NewClient(cfg.OMDb, cfg.Breaker, logging.Logger())
	resolver := platforms.NewSearchResolver(cfg.Scraper, cfg.Breaker, logging.Logger())

	generator := recommend.NewGenerator(geminiClient, cfg.Recommend.MaxTitles, logging.Logger())
	engine := recommend.NewEngine(cfg.Recommend, generator, omdbClient, resolver, logging.Logger())

	return api.NewHandler(engine, version, map[string]api.BreakerReporter{
		metrics.UpstreamGemini:  geminiClient,
		metrics.UpstreamOMDb:    omdbClient,
		metrics.UpstreamScraper: resolver,
	}, metrics.UpstreamGemini)
}
