// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateGemini(); err != nil {
		return err
	}

	if err := c.validateOMDb(); err != nil {
		return err
	}

	if err := c.validateScraper(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateBreaker(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateGemini() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL must not be empty")
	}
	if err := validateEndpointURL(c.Gemini.BaseURL, "GEMINI_BASE_URL"); err != nil {
		return err
	}
	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 2 {
		return fmt.Errorf("GEMINI_TEMPERATURE must be between 0 and 2")
	}
	if c.Gemini.MaxOutputTokens < 1 {
		return fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS must be positive")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateOMDb() error {
	if c.OMDb.APIKey == "" {
		return fmt.Errorf("OMDB_API_KEY is required")
	}
	if err := validateEndpointURL(c.OMDb.BaseURL, "OMDB_BASE_URL"); err != nil {
		return err
	}
	if c.OMDb.Timeout <= 0 {
		return fmt.Errorf("OMDB_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateScraper() error {
	if err := validateEndpointURL(c.Scraper.BaseURL, "SCRAPER_BASE_URL"); err != nil {
		return err
	}
	if strings.Count(c.Scraper.QueryTemplate, "%s") != 1 {
		return fmt.Errorf("SCRAPER_QUERY_TEMPLATE must contain exactly one %%s placeholder")
	}
	if strings.TrimSpace(c.Scraper.PlatformClass) == "" {
		return fmt.Errorf("SCRAPER_PLATFORM_CLASS must not be empty")
	}
	if len(c.Scraper.AllowedPlatforms) == 0 {
		return fmt.Errorf("SCRAPER_ALLOWED_PLATFORMS must list at least one platform")
	}
	if strings.TrimSpace(c.Scraper.NotFoundLabel) == "" {
		return fmt.Errorf("SCRAPER_NOT_FOUND_LABEL must not be empty")
	}
	for _, p := range c.Scraper.AllowedPlatforms {
		if p == c.Scraper.NotFoundLabel {
			return fmt.Errorf("SCRAPER_NOT_FOUND_LABEL must not appear in SCRAPER_ALLOWED_PLATFORMS")
		}
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("SCRAPER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxTitles < 1 {
		return fmt.Errorf("RECOMMEND_MAX_TITLES must be at least 1")
	}
	if c.Recommend.Concurrency < 1 {
		return fmt.Errorf("RECOMMEND_CONCURRENCY must be at least 1")
	}
	if c.Recommend.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity rejects wildcard CORS in production
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if !c.IsProduction() {
		return nil
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain '*' when ENVIRONMENT=production")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
