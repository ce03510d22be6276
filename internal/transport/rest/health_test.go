package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingerMock struct {
	err error
}

func (m *pingerMock) Ping(_ context.Context) error {
	return m.err
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{err: errors.New("down")}, "test-version", nil)

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" || resp.Timestamp.IsZero() {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{"storage up", nil, http.StatusOK, "ok"},
		{"storage down", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewHealthHandler(&pingerMock{err: tt.err}, "v", nil)

			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if resp := decodeHealth(t, rec); resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
		})
	}
}

func TestReady_IgnoresExtraComponents(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{}, "v", map[string]Pinger{
		"events": &pingerMock{err: errors.New("broker down")},
	})

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected readiness to depend on storage only, got %d", rec.Code)
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{}, "v1.0.0", map[string]Pinger{"export": &pingerMock{}})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "ok" || resp.Version != "v1.0.0" {
		t.Errorf("unexpected response %+v", resp)
	}
	for _, name := range []string{"storage", "export"} {
		comp, ok := resp.Components[name]
		if !ok {
			t.Fatalf("expected %q component in response", name)
		}
		if comp.Status != "ok" || comp.Latency == "" {
			t.Errorf("%s = %+v", name, comp)
		}
	}
}

func TestHealth_ComponentDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{}, "v1.0.0", map[string]Pinger{
		"events": &pingerMock{err: errors.New("broker down")},
	})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	if resp.Components["storage"].Status != "ok" || resp.Components["events"].Status != "down" {
		t.Errorf("components = %+v", resp.Components)
	}
}
