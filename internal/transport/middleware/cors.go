package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/Rkreels/powerbi-sub001/internal/config"
)

// CORS answers preflight requests and decorates responses for allowed
// origins. The request origin is echoed rather than "*". Credentials are
// only allowed for explicitly listed origins.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	anyOrigin := slices.Contains(origins, "*")
	credentials := cfg.AllowCredentials && !anyOrigin
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Add("Vary", "Origin")
				if anyOrigin || slices.Contains(origins, origin) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					if credentials {
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
