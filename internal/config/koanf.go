// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodflix/config.yaml",
	"/etc/moodflix/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultAllowedPlatforms is the platform allow-list used when none is configured.
var DefaultAllowedPlatforms = []string{
	"Netflix", "Disney+", "Hotstar", "Prime Video", "HBO", "AppleTV",
	"Viu", "Vidio", "Vision+", "Catchplay", "Mubi", "Klikfilm",
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			BaseURL:         "https://generativelanguage.googleapis.com/v1beta",
			Model:           "gemini-1.5-pro",
			Temperature:     1.0,
			MaxOutputTokens: 256,
			Timeout:         30 * time.Second,
		},
		OMDb: OMDbConfig{
			BaseURL: "http://www.omdbapi.com/",
			Timeout: 10 * time.Second,
		},
		Scraper: ScraperConfig{
			BaseURL:          "https://www.google.com/search",
			UserAgent:        "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36",
			QueryTemplate:    "%s bisa nonton dimana indonesia",
			PlatformClass:    "VuuXrf",
			AllowedPlatforms: append([]string(nil), DefaultAllowedPlatforms...),
			NotFoundLabel:    "Unavailable in Indonesia",
			Timeout:          10 * time.Second,
		},
		Recommend: RecommendConfig{
			MaxTitles:      5,
			Concurrency:    5,
			RequestTimeout: 60 * time.Second,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		Server: ServerConfig{
			Port:        5000,
			Host:        "0.0.0.0",
			Timeout:     90 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"https://moodflix-tau.vercel.app"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// GEMINI_API_KEY -> gemini.api_key, SCRAPER_TIMEOUT -> scraper.timeout
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated slices.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"scraper.allowed_platforms",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML lists arrive already split.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"gemini_api_key":           "gemini.api_key",
	"gemini_base_url":          "gemini.base_url",
	"gemini_model":             "gemini.model",
	"gemini_temperature":       "gemini.temperature",
	"gemini_max_output_tokens": "gemini.max_output_tokens",
	"gemini_timeout":           "gemini.timeout",

	"omdb_api_key":  "omdb.api_key",
	"omdb_base_url": "omdb.base_url",
	"omdb_timeout":  "omdb.timeout",

	"scraper_base_url":          "scraper.base_url",
	"scraper_user_agent":        "scraper.user_agent",
	"scraper_query_template":    "scraper.query_template",
	"scraper_platform_class":    "scraper.platform_class",
	"scraper_allowed_platforms": "scraper.allowed_platforms",
	"scraper_not_found_label":   "scraper.not_found_label",
	"scraper_timeout":           "scraper.timeout",

	"recommend_max_titles":      "recommend.max_titles",
	"recommend_concurrency":     "recommend.concurrency",
	"recommend_request_timeout": "recommend.request_timeout",

	"breaker_enabled":       "breaker.enabled",
	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",

	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"cors_origins": "security.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - GEMINI_API_KEY -> gemini.api_key
//   - HTTP_PORT -> server.port
//   - CORS_ORIGINS -> security.cors_origins
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	// Unmapped keys are skipped so unrelated environment variables never leak into config.
	return ""
}
