package middleware

import (
	"net/http"
	"strings"
)

const defaultAllowHeaders = "Content-Type, X-Request-ID"

// CORS applies the cross-origin policy. allowedOrigins is a comma separated
// list; "*" admits every origin and every requested header.
func CORS(allowedOrigins string) func(http.Handler) http.Handler {
	var origins []string
	wildcard := false
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			wildcard = true
		}
		origins = append(origins, o)
	}

	isAllowed := func(origin string) bool {
		if wildcard {
			return true
		}
		for _, o := range origins {
			if o == origin {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()
			h.Add("Vary", "Origin")
			h.Add("Vary", "Access-Control-Request-Headers")

			switch {
			case origin != "" && isAllowed(origin):
				h.Set("Access-Control-Allow-Origin", origin)
			case origin == "" && wildcard:
				h.Set("Access-Control-Allow-Origin", "*")
			}
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			allowHeaders := defaultAllowHeaders
			if requested := r.Header.Get("Access-Control-Request-Headers"); wildcard && requested != "" {
				allowHeaders = requested
			}
			h.Set("Access-Control-Allow-Headers", allowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
