// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/models"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func TestBuildPrompt(t *testing.T) {
	req := models.RecommendationRequest{
		DayOfWeek:     "Friday",
		Mood:          "happy",
		AttentionSpan: "short",
		SubtitlesOK:   false,
	}

	got := BuildPrompt(req, 5)
	want := "Today is Friday. I am feeling happy.\n" +
		"I have a short attention span and I do not want watch movies with subtitles.\n" +
		"Please provide a list of 5 movie or series titles that I might enjoy, separated by commas."
	if got != want {
		t.Errorf("BuildPrompt() =\n%s\nwant\n%s", got, want)
	}

	req.SubtitlesOK = true
	if got := BuildPrompt(req, 3); !strings.Contains(got, "I am open to watch movies with subtitles") {
		t.Errorf("prompt with subtitles = %q", got)
	}
	if got := BuildPrompt(req, 3); !strings.Contains(got, "a list of 3 movie") {
		t.Errorf("prompt count not rendered: %q", got)
	}
}

func TestBuildPrompt_VerbatimInputs(t *testing.T) {
	req := models.RecommendationRequest{DayOfWeek: "Funday", Mood: "ecstatic & weird", AttentionSpan: "???"}
	got := BuildPrompt(req, 5)
	for _, s := range []string{"Funday", "ecstatic & weird", "???"} {
		if !strings.Contains(got, s) {
			t.Errorf("prompt missing %q: %q", s, got)
		}
	}
}

func TestParseTitles(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"simple", "Inception, The Office, Up", 5, []string{"Inception", "The Office", "Up"}},
		{"surrounding whitespace", "  Up ,\n Coco \n", 5, []string{"Up", "Coco"}},
		{"empty segments dropped", "Up,, ,Coco,", 5, []string{"Up", "Coco"}},
		{"capped", "A,B,C,D,E,F,G", 5, []string{"A", "B", "C", "D", "E"}},
		{"duplicates kept", "Up,Up", 5, []string{"Up", "Up"}},
		{"single", "Inception", 5, []string{"Inception"}},
		{"empty", "   ", 5, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTitles(tt.text, tt.limit)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("ParseTitles(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	fake := &fakeGenerator{text: "Inception, Up, Coco, Her, Heat, Ran"}
	g := NewGenerator(fake, 5, zerolog.Nop())

	titles, err := g.Generate(context.Background(), models.RecommendationRequest{DayOfWeek: "Monday", Mood: "sad", AttentionSpan: "long"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(titles) != 5 {
		t.Errorf("Generate() returned %d titles, want 5", len(titles))
	}
	if !strings.HasPrefix(fake.prompt, "Today is Monday. I am feeling sad.") {
		t.Errorf("unexpected prompt %q", fake.prompt)
	}
}

func TestGenerator_GenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeGenerator
	}{
		{"upstream error", &fakeGenerator{err: errors.New("quota exceeded")}},
		{"no titles", &fakeGenerator{text: " , , "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.fake, 5, zerolog.Nop())
			titles, err := g.Generate(context.Background(), models.RecommendationRequest{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !models.IsKind(err, models.KindGeneration) {
				t.Errorf("error kind = %v, want %v", models.KindOf(err), models.KindGeneration)
			}
			if titles != nil {
				t.Errorf("titles = %v, want nil", titles)
			}
		})
	}
}
