package middleware

import (
	"net"
	"net/http"

	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
)

// RateLimit answers 429 once a client IP exhausts its bucket.
func RateLimit(limiter *rl.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
