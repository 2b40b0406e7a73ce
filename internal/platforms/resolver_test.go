// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package platforms

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/models"
)

const notFound = "Unavailable in Indonesia"

const resultsPage = `<!doctype html>
<html><body>
  <div class="g"><span class="VuuXrf"> Netflix </span><a href="#">Watch</a></div>
  <div class="g"><span class="VuuXrf">Wikipedia</span></div>
  <div class="g"><span class="VuuXrf">Prime Video</span></div>
  <div class="g"><span class="VuuXrf">netflix</span></div>
  <div class="g"><span class="other">Disney+</span></div>
  <div class="g"><div class="VuuXrf">HBO</div></div>
</body></html>`

func testScraperConfig(baseURL string) config.ScraperConfig {
	return config.ScraperConfig{
		BaseURL:          baseURL,
		UserAgent:        "moodflix-test",
		QueryTemplate:    "%s bisa nonton dimana indonesia",
		PlatformClass:    "VuuXrf",
		AllowedPlatforms: config.DefaultAllowedPlatforms,
		NotFoundLabel:    notFound,
		Timeout:          5 * time.Second,
	}
}

func newTestResolver(t *testing.T, handler http.HandlerFunc) *SearchResolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSearchResolver(testScraperConfig(server.URL+"/search"), config.BreakerConfig{}, logging.NewTestLogger(io.Discard))
}

func TestExtractPlatforms(t *testing.T) {
	t.Parallel()

	names, err := ExtractPlatforms(strings.NewReader(resultsPage), "span.VuuXrf", allowSet(config.DefaultAllowedPlatforms))
	if err != nil {
		t.Fatalf("ExtractPlatforms() error = %v", err)
	}
	want := []string{"Netflix", "Prime Video"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ExtractPlatforms() = %v, want %v", names, want)
	}
}

func TestExtractPlatforms_ExactMatch(t *testing.T) {
	t.Parallel()

	page := `<span class="VuuXrf">NETFLIX</span><span class="VuuXrf">Prime  Video</span><span class="VuuXrf">
	Viu
	</span>`
	names, err := ExtractPlatforms(strings.NewReader(page), "span.VuuXrf", allowSet([]string{"Netflix", "Prime Video", " Viu "}))
	if err != nil {
		t.Fatalf("ExtractPlatforms() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Viu"}) {
		t.Errorf("ExtractPlatforms() = %v, want [Viu]", names)
	}
}

func TestResolve_FoundPlatforms(t *testing.T) {
	t.Parallel()

	var gotQuery, gotUA string
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(resultsPage))
	})

	set := resolver.Resolve(context.Background(), "Inception")

	if !reflect.DeepEqual(set, models.PlatformSet{"Netflix", "Prime Video"}) {
		t.Errorf("Resolve() = %v", set)
	}
	if gotQuery != "Inception bisa nonton dimana indonesia" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotUA != "moodflix-test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestResolve_NoMatchesYieldsSentinel(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><span class="VuuXrf">IMDb</span></body></html>`))
	})

	set := resolver.Resolve(context.Background(), "Obscure Film")
	if !reflect.DeepEqual(set, models.PlatformSet{notFound}) {
		t.Errorf("Resolve() = %v, want sentinel", set)
	}
}

func TestResolve_FailuresYieldSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"rate limited", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTooManyRequests) }},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			set := newTestResolver(t, tt.handler).Resolve(context.Background(), "Inception")
			if len(set) != 1 || set[0] != notFound {
				t.Errorf("Resolve() = %v, want sentinel", set)
			}
		})
	}
}

func TestResolve_UnreachableHost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	var logs bytes.Buffer
	resolver := NewSearchResolver(testScraperConfig(baseURL), config.BreakerConfig{}, logging.NewTestLogger(&logs))

	set := resolver.Resolve(context.Background(), "Inception")
	if !set.IsNotFound(notFound) {
		t.Errorf("Resolve() = %v, want sentinel", set)
	}
	if !strings.Contains(logs.String(), "SCRAPE_ERROR") {
		t.Errorf("expected SCRAPE_ERROR in logs: %s", logs.String())
	}
}

// Output is always a subset of the allow-list or exactly the sentinel.
func TestResolve_OutputWithinAllowList(t *testing.T) {
	t.Parallel()

	pages := []string{
		resultsPage,
		`<span class="VuuXrf">Hulu</span><span class="VuuXrf">Viu</span>`,
		`<span class="VuuXrf"></span>`,
		`not html at all`,
	}

	allowed := make(map[string]bool)
	for _, p := range config.DefaultAllowedPlatforms {
		allowed[p] = true
	}

	for i, page := range pages {
		page := page
		resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(page))
		})
		set := resolver.Resolve(context.Background(), "Title")
		if len(set) == 0 {
			t.Errorf("page %d: empty platform set", i)
			continue
		}
		if set.IsNotFound(notFound) {
			continue
		}
		for _, name := range set {
			if !allowed[name] {
				t.Errorf("page %d: %q is not allow-listed", i, name)
			}
		}
	}
}

func TestNotFoundLabel(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {})
	if resolver.NotFoundLabel() != notFound {
		t.Errorf("NotFoundLabel() = %q", resolver.NotFoundLabel())
	}
	if resolver.BreakerState() != "disabled" {
		t.Errorf("BreakerState() = %q, want disabled", resolver.BreakerState())
	}
}
