// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/models"
)

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Generator asks a text model for candidate titles.
type Generator struct {
	client    TextGenerator
	maxTitles int
	logger    zerolog.Logger
}

// NewGenerator creates a Generator that returns at most maxTitles titles.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewGenerator(client TextGenerator, maxTitles int, logger zerolog.Logger) *Generator {
	if maxTitles < 1 {
		maxTitles = 1
	}
	return &Generator{
		client:    client,
		maxTitles: maxTitles,
		logger:    logger.With().Str("component", "generator").Logger(),
	}
}

// BuildPrompt renders the request into the model prompt. Inputs are inserted
// verbatim.
func BuildPrompt(req models.RecommendationRequest, count int) string {
	subtitles := "do not want"
	if req.SubtitlesOK {
		subtitles = "am open to"
	}
	return fmt.Sprintf(
		"Today is %s. I am feeling %s.\n"+
			"I have a %s attention span and I %s watch movies with subtitles.\n"+
			"Please provide a list of %d movie or series titles that I might enjoy, separated by commas.",
		req.DayOfWeek, req.Mood, req.AttentionSpan, subtitles, count,
	)
}

// ParseTitles splits a comma-separated reply into trimmed, non-empty titles,
// keeping at most limit entries. Duplicates are kept.
func ParseTitles(text string, limit int) []string {
	parts := strings.Split(strings.TrimSpace(text), ",")
	titles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		titles = append(titles, p)
		if len(titles) == limit {
			break
		}
	}
	return titles
}

// Generate returns candidate titles for req. Any failure, including a reply
// with no usable titles, is a GENERATION_ERROR.
func (g *Generator) Generate(ctx context.Context, req models.RecommendationRequest) ([]string, error) {
	logger := logging.WithContext(g.logger, ctx)

	text, err := g.client.GenerateText(ctx, BuildPrompt(req, g.maxTitles))
	if err != nil {
		return nil, models.NewError(models.KindGeneration, "recommend.Generate", err)
	}

	titles := ParseTitles(text, g.maxTitles)
	if len(titles) == 0 {
		return nil, models.NewError(models.KindGeneration, "recommend.Generate", fmt.Errorf("no titles in reply %q", text))
	}

	metrics.RecommendationTitlesGenerated.Add(float64(len(titles)))
	logger.Debug().Strs("titles", titles).Msg("Generated candidate titles")
	return titles, nil
}
