// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodflix/internal/models"
)

type mockRecommender struct {
	mu      sync.Mutex
	records []models.MovieRecord
	err     error
	calls   []models.RecommendationRequest
}

func (m *mockRecommender) Recommend(_ context.Context, req models.RecommendationRequest) ([]models.MovieRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	return m.records, m.err
}

type stubBreaker string

func (s stubBreaker) BreakerState() string { return string(s) }

const validQuery = "/get_recommendations?dayOfWeek=Friday&mood=happy&attentionSpan=short&subtitles=true"

func seriesRecord() models.MovieRecord {
	seasons := "9"
	return models.MovieRecord{
		Title:        "The Office",
		Year:         "2005–2013",
		Type:         models.TypeSeries,
		Runtime:      "22 min",
		TotalSeasons: &seasons,
		Platforms:    models.PlatformSet{"Netflix", "Prime Video"},
	}
}

func TestGetRecommendations_Success(t *testing.T) {
	t.Parallel()

	engine := &mockRecommender{records: []models.MovieRecord{
		{Title: "Inception", Year: "2010", Type: "movie", Runtime: "148 min", Platforms: models.PlatformSet{"Netflix"}},
		seriesRecord(),
	}}
	handler := NewHandler(engine, "test", nil)

	w := httptest.NewRecorder()
	handler.GetRecommendations(w, httptest.NewRequest(http.MethodGet, validQuery, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0]["title"] != "Inception" || got[1]["title"] != "The Office" {
		t.Errorf("order not preserved: %v", got)
	}
	if _, ok := got[0]["totalSeasons"]; ok {
		t.Error("movie record must not carry totalSeasons")
	}
	if got[1]["totalSeasons"] != "9" {
		t.Errorf("series totalSeasons = %v, want 9", got[1]["totalSeasons"])
	}

	if len(engine.calls) != 1 {
		t.Fatalf("engine called %d times, want 1", len(engine.calls))
	}
	want := models.RecommendationRequest{DayOfWeek: "Friday", Mood: "happy", AttentionSpan: "short", SubtitlesOK: true}
	if engine.calls[0] != want {
		t.Errorf("engine request = %+v, want %+v", engine.calls[0], want)
	}
}

func TestGetRecommendations_EmptyIsArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		engine *mockRecommender
	}{
		{"nothing found", &mockRecommender{records: []models.MovieRecord{}}},
		{"nil slice", &mockRecommender{}},
		{"generation failure", &mockRecommender{
			records: []models.MovieRecord{},
			err:     models.NewError(models.KindGeneration, "recommend.Generate", errors.New("quota")),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(tt.engine, "test", nil).GetRecommendations(w, httptest.NewRequest(http.MethodGet, validQuery, nil))

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
			if body := strings.TrimSpace(w.Body.String()); body != "[]" {
				t.Errorf("body = %q, want []", body)
			}
		})
	}
}

func TestGetRecommendations_MissingParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"no params", "/get_recommendations", "dayOfWeek"},
		{"missing subtitles", "/get_recommendations?dayOfWeek=Friday&mood=happy&attentionSpan=short", "subtitles"},
		{"missing mood", "/get_recommendations?dayOfWeek=Friday&attentionSpan=short&subtitles=false", "mood"},
		{"blank attention span", "/get_recommendations?dayOfWeek=Friday&mood=happy&attentionSpan=%20%20&subtitles=false", "attentionSpan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockRecommender{}
			w := httptest.NewRecorder()
			NewHandler(engine, "test", nil).GetRecommendations(w, httptest.NewRequest(http.MethodGet, tt.query, nil))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}

			var resp models.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if resp.Status != "error" || resp.Error == nil {
				t.Fatalf("unexpected envelope: %+v", resp)
			}
			if resp.Error.Code != string(models.KindBadRequest) {
				t.Errorf("code = %q, want %q", resp.Error.Code, models.KindBadRequest)
			}
			if !strings.Contains(resp.Error.Message, tt.wantField) {
				t.Errorf("message %q does not name %q", resp.Error.Message, tt.wantField)
			}
			if len(engine.calls) != 0 {
				t.Error("engine must not run for a malformed request")
			}
		})
	}
}

func TestGetRecommendations_SubtitlesParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"yes", false},
		{"1", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			engine := &mockRecommender{}
			url := "/get_recommendations?dayOfWeek=Monday&mood=calm&attentionSpan=long&subtitles=" + tt.value
			w := httptest.NewRecorder()
			NewHandler(engine, "test", nil).GetRecommendations(w, httptest.NewRequest(http.MethodGet, url, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if engine.calls[0].SubtitlesOK != tt.want {
				t.Errorf("SubtitlesOK = %v, want %v", engine.calls[0].SubtitlesOK, tt.want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		upstreams  map[string]BreakerReporter
		wantStatus string
	}{
		{"all closed", map[string]BreakerReporter{"gemini": stubBreaker("closed"), "omdb": stubBreaker("closed")}, "healthy"},
		{"one open", map[string]BreakerReporter{"gemini": stubBreaker("closed"), "omdb": stubBreaker("open")}, "degraded"},
		{"no upstreams", nil, "healthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(&mockRecommender{}, "1.2.3", tt.upstreams).Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var resp struct {
				Status string              `json:"status"`
				Data   models.HealthStatus `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data.Status != tt.wantStatus {
				t.Errorf("health status = %q, want %q", resp.Data.Status, tt.wantStatus)
			}
			if resp.Data.Version != "1.2.3" {
				t.Errorf("version = %q", resp.Data.Version)
			}
			if len(resp.Data.Upstreams) != len(tt.upstreams) {
				t.Errorf("upstreams = %v", resp.Data.Upstreams)
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NewHandler(&mockRecommender{}, "test", map[string]BreakerReporter{"omdb": stubBreaker("open")}).
		HealthLive(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even with an open breaker", w.Code)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		upstreams map[string]BreakerReporter
		wantCode  int
	}{
		{"closed", map[string]BreakerReporter{"gemini": stubBreaker("closed")}, http.StatusOK},
		{"half-open", map[string]BreakerReporter{"gemini": stubBreaker("half-open")}, http.StatusOK},
		{"disabled", map[string]BreakerReporter{"gemini": stubBreaker("disabled")}, http.StatusOK},
		{"required open", map[string]BreakerReporter{"gemini": stubBreaker("open"), "omdb": stubBreaker("closed")}, http.StatusServiceUnavailable},
		{"scraper open", map[string]BreakerReporter{"gemini": stubBreaker("closed"), "scraper": stubBreaker("open")}, http.StatusOK},
		{"omdb and scraper open", map[string]BreakerReporter{
			"gemini":  stubBreaker("closed"),
			"omdb":    stubBreaker("open"),
			"scraper": stubBreaker("open"),
		}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(&mockRecommender{}, "test", tt.upstreams, "gemini").
				HealthReady(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestHealthReady_NoRequiredUpstreams(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NewHandler(&mockRecommender{}, "test", map[string]BreakerReporter{"scraper": stubBreaker("open")}).
		HealthReady(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when no upstream is required", w.Code)
	}
}

func TestHealth_BestEffortOpenIsDegraded(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&mockRecommender{}, "test", map[string]BreakerReporter{
		"gemini":  stubBreaker("closed"),
		"scraper": stubBreaker("open"),
	}, "gemini")

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var resp struct {
		Data models.HealthStatus `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Status != "degraded" {
		t.Errorf("health status = %q, want degraded", resp.Data.Status)
	}
	if resp.Data.Upstreams["scraper"] != "open" {
		t.Errorf("upstreams = %v, want scraper open", resp.Data.Upstreams)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	if got := sanitizeLogValue("a\nb\tc"); got != `a\x0ab\x09c` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
	if got := sanitizeLogValue("plain"); got != "plain" {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}

type panicRecommender struct{}

func (panicRecommender) Recommend(context.Context, models.RecommendationRequest) ([]models.MovieRecord, error) {
	panic("boom")
}
