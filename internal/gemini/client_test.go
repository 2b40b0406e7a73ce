// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.GeminiConfig{
		APIKey:          "test-key",
		BaseURL:         server.URL + "/v1beta",
		Model:           "gemini-1.5-pro",
		Temperature:     1,
		MaxOutputTokens: 256,
		Timeout:         5 * time.Second,
	}, config.BreakerConfig{Enabled: false}, logging.NewTestLogger(io.Discard))
}

func writeCandidates(w http.ResponseWriter, parts ...string) {
	type p struct {
		Text string `json:"text"`
	}
	ps := make([]p, len(parts))
	for i, s := range parts {
		ps[i] = p{Text: s}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{"content": map[string]interface{}{"parts": ps}},
		},
	})
}

func TestGenerateText_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey, gotPrompt string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) == 1 && len(req.Contents[0].Parts) == 1 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		writeCandidates(w, "Inception, ", "Breaking Bad\n")
	})

	text, err := client.GenerateText(context.Background(), "Today is Friday.")
	if err != nil {
		t.Fatalf("GenerateText() error = %v", err)
	}
	if text != "Inception, Breaking Bad" {
		t.Errorf("text = %q", text)
	}
	if gotPath != "/v1beta/models/gemini-1.5-pro:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotPrompt != "Today is Friday." {
		t.Errorf("prompt = %q", gotPrompt)
	}
}

func TestGenerateText_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "http error with api body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
			},
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %T: %v", err, err)
				}
				if apiErr.StatusCode != http.StatusForbidden || apiErr.Message != "API key not valid" {
					t.Errorf("APIError = %+v", apiErr)
				}
			},
		},
		{
			name: "http error with plain body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream exploded", http.StatusBadGateway)
			},
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) || !strings.Contains(apiErr.Message, "upstream exploded") {
					t.Errorf("err = %v", err)
				}
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrEmptyResponse) {
					t.Errorf("err = %v, want ErrEmptyResponse", err)
				}
			},
		},
		{
			name: "blocked prompt",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrEmptyResponse) || !strings.Contains(err.Error(), "SAFETY") {
					t.Errorf("err = %v", err)
				}
			},
		},
		{
			name: "whitespace text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeCandidates(w, "  \n ")
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrEmptyResponse) {
					t.Errorf("err = %v, want ErrEmptyResponse", err)
				}
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			check: func(t *testing.T, err error) {
				if err == nil || !strings.Contains(err.Error(), "decode response") {
					t.Errorf("err = %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, tt.handler)
			_, err := client.GenerateText(context.Background(), "prompt")
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

func TestGenerateText_NotConfigured(t *testing.T) {
	t.Parallel()

	client := NewClient(config.GeminiConfig{BaseURL: "http://127.0.0.1:1", Model: "m", Timeout: time.Second},
		config.BreakerConfig{}, logging.NewTestLogger(io.Discard))

	if _, err := client.GenerateText(context.Background(), "prompt"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestGenerateText_ContextCanceled(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.GenerateText(ctx, "prompt"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestClientAccessors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	if client.Model() != "gemini-1.5-pro" {
		t.Errorf("Model() = %q", client.Model())
	}
	if client.BreakerState() != "disabled" {
		t.Errorf("BreakerState() = %q, want disabled", client.BreakerState())
	}
}
