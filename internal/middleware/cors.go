package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const allowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, MCP-Protocol-Version, MCP-Session-Id"

func Cors(origins []string) func(next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowedOrigins[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			userAgent := r.Header.Get("User-Agent")
			isMCP := strings.HasPrefix(r.URL.Path, "/mcp")

			switch {
			case
				allowedOrigins[origin],
				strings.HasPrefix(userAgent, "GymStats/1"),
				strings.HasPrefix(userAgent, "prctl/"),
				strings.HasPrefix(userAgent, "curl/"),
				// MCP clients often send no Origin
				isMCP:
				{
					allowOrigin := origin
					if allowOrigin == "" && isMCP {
						allowOrigin = "*"
					}
					w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
					w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
					w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
				}
			default:
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
