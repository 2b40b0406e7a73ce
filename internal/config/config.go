// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values for every optional setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//
//  1. Upstreams:
//     - Gemini: text generation for title suggestions
//     - OMDb: movie and series metadata
//     - Scraper: search-results page used for platform availability
//
//  2. Pipeline:
//     - Recommend: title cap and enrichment concurrency
//     - Breaker: circuit breaker settings shared by all upstream clients
//
//  3. HTTP:
//     - Server: listen address and timeouts
//     - Security: CORS origins
//
//  4. Observability:
//     - Logging: level, format and caller info
//
// Validation:
// Load returns an error if GEMINI_API_KEY or OMDB_API_KEY is missing, or if
// any URL, timeout or bound is malformed.
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Gemini    GeminiConfig    `koanf:"gemini"`
	OMDb      OMDbConfig      `koanf:"omdb"`
	Scraper   ScraperConfig   `koanf:"scraper"`
	Recommend RecommendConfig `koanf:"recommend"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// GeminiConfig configures the generative-text client.
//
// Environment Variables:
//   - GEMINI_API_KEY: API key (required)
//   - GEMINI_MODEL: model name (default: gemini-1.5-pro)
//   - GEMINI_BASE_URL: REST endpoint root
//   - GEMINI_TEMPERATURE, GEMINI_MAX_OUTPUT_TOKENS: generation settings
//   - GEMINI_TIMEOUT: per-call timeout (default: 30s)
type GeminiConfig struct {
	APIKey          string        `koanf:"api_key"`
	BaseURL         string        `koanf:"base_url"`
	Model           string        `koanf:"model"`
	Temperature     float64       `koanf:"temperature"`
	MaxOutputTokens int           `koanf:"max_output_tokens"`
	Timeout         time.Duration `koanf:"timeout"`
}

// OMDbConfig configures the metadata client.
type OMDbConfig struct {
	APIKey  string        `koanf:"api_key"`
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// ScraperConfig configures the platform resolver.
//
// QueryTemplate must contain exactly one %s, which is replaced by the title.
// PlatformClass is the CSS class of the element holding a platform name on
// the results page; it is the only markup assumption the resolver makes.
type ScraperConfig struct {
	BaseURL          string        `koanf:"base_url"`
	UserAgent        string        `koanf:"user_agent"`
	QueryTemplate    string        `koanf:"query_template"`
	PlatformClass    string        `koanf:"platform_class"`
	AllowedPlatforms []string      `koanf:"allowed_platforms"`
	NotFoundLabel    string        `koanf:"not_found_label"`
	Timeout          time.Duration `koanf:"timeout"`
}

// RecommendConfig configures the recommendation pipeline.
type RecommendConfig struct {
	MaxTitles      int           `koanf:"max_titles"`
	Concurrency    int           `koanf:"concurrency"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// BreakerConfig configures the circuit breakers wrapping each upstream client.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// SecurityConfig holds cross-origin settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration using the layered Koanf loader.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
func Load() (*Config, error) {
	return LoadWithKoanf()
}
