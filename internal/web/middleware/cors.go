// Package middleware holds HTTP middleware shared by the API routes.
package middleware

import (
	"net/http"
	"strings"
)

// originPolicy decides which cross-origin callers may reach the API.
type originPolicy struct {
	allowed map[string]struct{}
}

func newOriginPolicy(origins []string) originPolicy {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed[o] = struct{}{}
		}
	}
	return originPolicy{allowed: allowed}
}

// allows reports whether an Origin header value should receive CORS headers.
// Localhost origins on any port pass regardless of the configured list, so a
// local web client can talk to the API without configuration.
func (p originPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if isLocalhost(origin) {
		return true
	}
	_, ok := p.allowed[origin]
	return ok
}

// isLocalhost returns true if the origin is http(s)://localhost with any port.
func isLocalhost(origin string) bool {
	for _, prefix := range []string{"http://localhost", "https://localhost"} {
		rest, found := strings.CutPrefix(origin, prefix)
		if !found {
			continue
		}
		if rest == "" || strings.HasPrefix(rest, ":") {
			return true
		}
	}
	return false
}

// CORS returns middleware that answers cross-origin requests for the given
// origin whitelist. The API only serves reads and photo uploads, so the
// allowed methods stay at GET, POST and the OPTIONS preflight.
func CORS(origins []string) func(http.Handler) http.Handler {
	policy := newOriginPolicy(origins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); policy.allows(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
