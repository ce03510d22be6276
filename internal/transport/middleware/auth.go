package middleware

import (
	"net/http"
	"strings"

	"github.com/Rkreels/powerbi-sub001/internal/auth"
	"github.com/Rkreels/powerbi-sub001/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Auth resolves an optional bearer token. Requests without one pass through
// anonymously; a token that fails validation is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), claims.Subject)
			if claims.Name != "" {
				ctx = ctxutil.WithUserName(ctx, claims.Name)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
