package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rkreels/powerbi-sub001/pkg/ctxutil"
)

func TestChain_OuterFirst(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(mark("outer"), mark("inner"))(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestChain_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	Chain()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// The server stack: a panic deep in the chain is recovered with the request
// id already assigned, and the limiter still counts the failed request.
func TestChain_RecoveryRequestIDLimit(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	rl, _ := newTestLimiter()

	var seenID string
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = ctxutil.RequestIDFromCtx(r.Context())
		panic("chart renderer exploded")
	})
	handler := Chain(Recovery(logger), RequestID, rl.Limit(1))(panicking)

	req := httptest.NewRequest(http.MethodPost, "/api/reports", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", seenID)
	assert.Contains(t, logs.String(), "chart renderer exploded")

	rec = hit(handler, "10.0.0.1:5001")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader), "request id is assigned before the limiter rejects")
}
