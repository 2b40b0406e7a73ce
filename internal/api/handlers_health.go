// Moodflix - Mood-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/tomtom215/moodflix/internal/models"
)

const breakerOpen = "open"

// upstreamStates snapshots every breaker and returns the names of the open
// ones. With requiredOnly set, open breakers of best-effort upstreams are not
// listed.
func (h *Handler) upstreamStates(requiredOnly bool) (map[string]string, []string) {
	states := make(map[string]string, len(h.upstreams))
	var open []string
	for name, b := range h.upstreams {
		state := b.BreakerState()
		states[name] = state
		if state == breakerOpen && (!requiredOnly || h.required[name]) {
			open = append(open, name)
		}
	}
	sort.Strings(open)
	return states, open
}

// Health handles health check requests
//
// @Summary Get service health
// @Description Returns version, uptime and the circuit breaker state of each upstream. Status is "degraded" while any breaker is open.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	states, open := h.upstreamStates(false)

	status := "healthy"
	if len(open) > 0 {
		status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:    status,
			Version:   h.version,
			Uptime:    time.Since(h.startTime).Seconds(),
			Upstreams: states,
		},
	})
}

// HealthLive handles liveness probe requests.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is running, regardless of upstreams.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthReady handles readiness probe requests.
//
// @Summary Readiness probe
// @Description Returns 503 while the circuit breaker of a required upstream is open. Best-effort upstreams never affect readiness.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "A required upstream is unavailable"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	states, open := h.upstreamStates(true)

	statusCode := http.StatusOK
	status := "ready"
	if len(open) > 0 {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	data := map[string]interface{}{
		"ready_to_serve": len(open) == 0,
		"upstreams":      states,
		"uptime":         time.Since(h.startTime).Seconds(),
	}
	if len(open) > 0 {
		data["open_breakers"] = open
	}

	respondJSON(w, r, statusCode, &models.APIResponse{
		Status: status,
		Data:   data,
	})
}
