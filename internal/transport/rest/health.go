package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// Pinger is satisfied by every storage backend and by the optional
// export and event backends.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	storage    Pinger
	components map[string]Pinger
	version    string
}

// NewHealthHandler creates a HealthHandler. storage gates readiness; extra
// components are reported by /health only.
func NewHealthHandler(storage Pinger, version string, extra map[string]Pinger) *HealthHandler {
	components := map[string]Pinger{"storage": storage}
	for name, p := range extra {
		if p != nil {
			components[name] = p
		}
	}
	return &HealthHandler{storage: storage, components: components, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 503 when storage cannot be reached.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health pings every component and reports latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, len(h.components)),
	}

	for name, p := range h.components {
		start := time.Now()
		if err := p.Ping(ctx); err != nil {
			resp.Components[name] = CompStatus{Status: "down"}
			resp.Status = "down"
			continue
		}
		resp.Components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}
