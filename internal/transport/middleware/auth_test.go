package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rkreels/powerbi-sub001/internal/auth"
	"github.com/Rkreels/powerbi-sub001/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

func rejectingValidator(t *testing.T) *tokenValidatorMock {
	return &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (auth.Claims, error) {
			t.Error("ValidateAccessToken should not be called")
			return auth.Claims{}, errors.New("should not be called")
		},
	}
}

func TestAuth_ValidToken(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (auth.Claims, error) {
			if token == "valid-token" {
				return auth.Claims{Subject: "user-1", Name: "Jane Smith"}, nil
			}
			return auth.Claims{}, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := ctxutil.UserIDFromCtx(r.Context()); !ok || id != "user-1" {
			t.Errorf("user id = (%q, %v), want user-1", id, ok)
		}
		if name, ok := ctxutil.UserNameFromCtx(r.Context()); !ok || name != "Jane Smith" {
			t.Errorf("user name = (%q, %v), want Jane Smith", name, ok)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if len(validator.ValidateAccessTokenCalls()) != 1 {
		t.Errorf("expected one validation call, got %d", len(validator.ValidateAccessTokenCalls()))
	}
}

func TestAuth_TokenWithoutName(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(string) (auth.Claims, error) {
			return auth.Claims{Subject: "svc"}, nil
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserNameFromCtx(r.Context()); ok {
			t.Error("expected no user name in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(string) (auth.Claims, error) {
			return auth.Claims{}, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON error body, got content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"error":"unauthorized"`) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestAuth_Anonymous(t *testing.T) {
	headers := map[string]string{
		"no header":    "",
		"basic auth":   "Basic dXNlcjpwYXNz",
		"empty bearer": "Bearer ",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			validator := rejectingValidator(t)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
					t.Error("expected anonymous request")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			Auth(validator)(handler).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if len(validator.ValidateAccessTokenCalls()) > 0 {
				t.Error("ValidateAccessToken should not be called for anonymous request")
			}
		})
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"bearer lowercase", "bearer valid-token", "valid-token"},
		{"bearer mixed case", "BEARER valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"bearer empty token", "Bearer ", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if got := extractBearerToken(req); got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestAuth_WithJWTManager(t *testing.T) {
	mgr := auth.NewJWTManager(strings.Repeat("s", 32), "powerbi-test", time.Hour)
	token, err := mgr.GenerateAccessToken("user-7", "John Doe")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, _ := ctxutil.UserNameFromCtx(r.Context())
		_, _ = w.Write([]byte(name))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(mgr)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "John Doe" {
		t.Errorf("got %d %q, want 200 John Doe", rec.Code, rec.Body.String())
	}
}
