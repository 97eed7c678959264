package handler

import (
	"net"
	"net/http"

	"github.com/colefield/ripple/internal/metrics"
	"github.com/colefield/ripple/internal/service"
)

// RateLimit rejects requests from clients that exceed the per-IP token
// bucket, answering 429. Intended for the credential endpoints.
func RateLimit(limiter *service.TokenBucket, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			metrics.RateLimitedTotal.WithLabelValues(r.URL.Path).Inc()
			writeError(w, http.StatusTooManyRequests, "Too many requests. Please slow down.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
